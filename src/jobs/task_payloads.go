package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeDefectReported = "defect:reported"

type DefectPayload struct {
	DefectID   string `json:"defect_id"`
	Title      string `json:"title"`
	Severity   string `json:"severity"`
	SiteName   string `json:"site_name"`
	ReportedBy string `json:"reported_by"`
}

func NewDefectReportedTask(p DefectPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDefectReported, payload), nil
}

// TypeOverdueScan polls the missed-checkpoints report and mails a summary.
// Scheduled periodically; the report itself stays pull-based.
const TypeOverdueScan = "patrol:overdue-scan"

func NewOverdueScanTask() *asynq.Task {
	return asynq.NewTask(TypeOverdueScan, nil)
}
