package jobs

import (
	"log"

	"Backend-GuardPoint/src/models"

	"github.com/hibiken/asynq"
)

// Notifier enqueues notification tasks. Enqueue failures are logged and
// swallowed: notification delivery must never fail or delay the triggering
// request.
type Notifier struct {
	client *asynq.Client
}

func NewNotifier(client *asynq.Client) *Notifier {
	return &Notifier{client: client}
}

func (n *Notifier) DefectReported(defect models.Defect) {
	task, err := NewDefectReportedTask(DefectPayload{
		DefectID:   defect.ID,
		Title:      defect.Title,
		Severity:   defect.Severity,
		SiteName:   defect.SiteName,
		ReportedBy: defect.ReportedBy.Name,
	})
	if err != nil {
		log.Println("⚠️ Failed to build defect task:", err)
		return
	}
	if _, err := n.client.Enqueue(task); err != nil {
		log.Println("⚠️ Failed to enqueue defect task:", err)
	}
}
