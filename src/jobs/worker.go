package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"Backend-GuardPoint/src/config"
	"Backend-GuardPoint/src/services/patrols"

	"github.com/hibiken/asynq"
)

// Worker processes notification tasks. Email failures are logged, not
// retried forever: alerts are best-effort.
type Worker struct {
	cfg     config.Config
	patrols *patrols.Service
	sender  MailSender
}

func NewWorker(cfg config.Config, patrolSvc *patrols.Service, sender MailSender) *Worker {
	return &Worker{cfg: cfg, patrols: patrolSvc, sender: sender}
}

// Start runs the asynq server and the periodic overdue scan in background
// goroutines. No-op when Redis is not configured.
func (w *Worker) Start() {
	if w.cfg.RedisURI == "" {
		log.Println("⚠️ Redis not available. Notification worker not started.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: w.cfg.RedisURI},
		asynq.Config{Concurrency: 2},
	)
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeDefectReported, w.HandleDefectReported)
	mux.HandleFunc(TypeOverdueScan, w.HandleOverdueScan)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Notification worker stopped:", err)
		}
	}()

	scheduler := asynq.NewScheduler(asynq.RedisClientOpt{Addr: w.cfg.RedisURI}, nil)
	spec := fmt.Sprintf("@every %dm", w.cfg.DefaultCheckFrequencyMinutes)
	if _, err := scheduler.Register(spec, NewOverdueScanTask()); err != nil {
		log.Println("⚠️ Failed to register overdue scan:", err)
		return
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Println("❌ Overdue scan scheduler stopped:", err)
		}
	}()

	log.Println("✅ Notification worker started")
}

func (w *Worker) HandleDefectReported(ctx context.Context, t *asynq.Task) error {
	var payload DefectPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}

	if w.sender == nil || w.cfg.OpsEmail == "" {
		log.Println("⚠️ SMTP not configured. Skipping defect alert:", payload.DefectID)
		return nil
	}

	subject := fmt.Sprintf("Defect reported: %s (%s)", payload.Title, payload.Severity)
	body := fmt.Sprintf(
		"<p><b>%s</b> reported a %s severity defect at %s.</p><p>%s</p><p>Defect ID: %s</p>",
		payload.ReportedBy, payload.Severity, payload.SiteName, payload.Title, payload.DefectID)

	if err := w.sender.Send(w.cfg.OpsEmail, subject, body); err != nil {
		log.Println("⚠️ Failed to send defect alert:", err)
	}
	return nil
}

func (w *Worker) HandleOverdueScan(ctx context.Context, t *asynq.Task) error {
	missed, err := w.patrols.MissedCheckpoints(ctx, "")
	if err != nil {
		log.Println("⚠️ Overdue scan failed:", err)
		return err
	}
	if len(missed) == 0 {
		return nil
	}

	if w.sender == nil || w.cfg.OpsEmail == "" {
		log.Printf("⚠️ SMTP not configured. %d overdue checkpoints not alerted.", len(missed))
		return nil
	}

	var b strings.Builder
	b.WriteString("<p>Checkpoints overdue for a patrol visit:</p><ul>")
	for _, m := range missed {
		if m.NeverChecked {
			fmt.Fprintf(&b, "<li><b>%s</b> (%s): never checked</li>", m.Checkpoint.Name, m.Checkpoint.SiteName)
			continue
		}
		fmt.Fprintf(&b, "<li><b>%s</b> (%s): overdue by %.0f minutes</li>",
			m.Checkpoint.Name, m.Checkpoint.SiteName, *m.OverdueByMinutes)
	}
	b.WriteString("</ul>")

	subject := fmt.Sprintf("%d checkpoints missed", len(missed))
	if err := w.sender.Send(w.cfg.OpsEmail, subject, b.String()); err != nil {
		log.Println("⚠️ Failed to send overdue alert:", err)
	}
	return nil
}
