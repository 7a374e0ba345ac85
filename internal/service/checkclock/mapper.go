package checkclock

import (
	"time"

	"github.com/kerjahub/hris-portal-go/internal/domain/checkclock"
)

// recordView pairs a record with its precomputed response so the list
// operators never re-run classification inside a sort comparator.
type recordView struct {
	rec  checkclock.Record
	resp checkclock.RecordResponse
}

func buildViews(records []checkclock.Record) ([]recordView, error) {
	views := make([]recordView, 0, len(records))
	for _, rec := range records {
		resp, err := mapRecordToResponse(rec)
		if err != nil {
			// Malformed rows degrade to an empty projection instead of
			// failing the whole listing.
			resp = baseResponse(rec)
		}
		views = append(views, recordView{rec: rec, resp: resp})
	}
	return views, nil
}

func viewFields(v recordView) map[string]string {
	fields := map[string]string{
		"employee_name":  v.resp.EmployeeName,
		"jobdesk":        v.resp.Jobdesk,
		"display_status": v.resp.DisplayStatus,
		"employee_id":    v.resp.EmployeeID,
	}
	if v.resp.ClockIn != nil {
		fields["clock_in"] = *v.resp.ClockIn
	}
	if v.resp.ClockOut != nil {
		fields["clock_out"] = *v.resp.ClockOut
	}
	return fields
}

func viewRecords(views []recordView) []checkclock.Record {
	records := make([]checkclock.Record, 0, len(views))
	for _, v := range views {
		records = append(records, v.rec)
	}
	return records
}

// mapRecordToResponse converts a Record entity to RecordResponse, running
// the classifier for the projection fields.
func mapRecordToResponse(rec checkclock.Record) (checkclock.RecordResponse, error) {
	c, err := checkclock.Classify(rec)
	if err != nil {
		return checkclock.RecordResponse{}, err
	}

	resp := baseResponse(rec)
	resp.DisplayStatus = string(c.DisplayStatus)
	resp.WorkHours = c.WorkHours
	return resp, nil
}

func baseResponse(rec checkclock.Record) checkclock.RecordResponse {
	resp := checkclock.RecordResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		Jobdesk:      rec.Jobdesk,
		Type:         string(rec.Type),
		Approval:     string(rec.Approval),
		WorkHours:    checkclock.NoWorkHours,
		LocationName: rec.Location.Name,
		Address:      rec.Location.Address,
		Latitude:     rec.Location.Latitude,
		Longitude:    rec.Location.Longitude,
		Notes:        rec.Notes,
	}

	resp.ClockIn = timePtrToString(rec.ClockIn)
	resp.ClockOut = timePtrToString(rec.ClockOut)
	resp.StartDate = datePtrToString(rec.StartDate)
	resp.EndDate = datePtrToString(rec.EndDate)

	if rec.RawStatus != nil {
		raw := string(*rec.RawStatus)
		resp.RawStatus = &raw
	}
	if rec.Proof != nil {
		resp.ProofName = &rec.Proof.FileName
		resp.ProofURL = &rec.Proof.URL
	}
	if rec.ClockOutProof != nil {
		resp.ClockOutProofName = &rec.ClockOutProof.FileName
		resp.ClockOutProofURL = &rec.ClockOutProof.URL
	}

	return resp
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func datePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02")
	return &format
}
