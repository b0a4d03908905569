package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/config"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/db"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/models"
)

// Message is one outbound notification.
type Message struct {
	Channel   string // models.ChannelEmail, ChannelSMS or ChannelWhatsApp
	Recipient string
	Subject   string
	Body      string
	RefID     string // related nomination/lead ID, if any
}

// workerPool runs dispatch tasks off the request path.
type workerPool struct {
	taskChan chan func()
	wg       sync.WaitGroup
}

func newWorkerPool(maxWorkers int) *workerPool {
	pool := &workerPool{
		taskChan: make(chan func(), maxWorkers*2),
	}
	for i := 0; i < maxWorkers; i++ {
		go pool.worker()
	}
	return pool
}

func (p *workerPool) worker() {
	for task := range p.taskChan {
		task()
		p.wg.Done()
	}
}

func (p *workerPool) addTask(task func()) {
	p.wg.Add(1)
	p.taskChan <- task
}

// Wait blocks until every queued task has finished. Used by tests and
// shutdown.
func (p *workerPool) wait() {
	p.wg.Wait()
}

var (
	pool       *workerPool
	emailCl    *emailClient
	smsCl      *smsClient
	adminEmail string
	adminPhone string
)

// Init wires the notification clients and starts the dispatch pool.
func Init(cfg config.Config) {
	pool = newWorkerPool(4)
	emailCl = newEmailClient(cfg.Email)
	smsCl = newSMSClient(cfg.SMS)
	adminEmail = cfg.AdminEmail
	adminPhone = cfg.AdminPhone
}

// AdminEmail returns the configured admin alert address.
func AdminEmail() string { return adminEmail }

// AdminPhone returns the configured admin alert phone number.
func AdminPhone() string { return adminPhone }

// Dispatch queues a notification. The HTTP request that triggered it never
// waits on the send; the outcome is written to the notifications collection
// so failures leave a durable record.
func Dispatch(msg Message) {
	if pool == nil {
		return
	}
	if msg.Recipient == "" {
		return
	}
	pool.addTask(func() {
		err := send(msg)
		record(msg, err)
		if err != nil {
			log.Error().Err(err).
				Str("channel", msg.Channel).
				Str("recipient", msg.Recipient).
				Str("subject", msg.Subject).
				Msg("notification dispatch failed")
		}
	})
}

// Flush waits for all queued notifications to finish sending.
func Flush() {
	if pool != nil {
		pool.wait()
	}
}

func send(msg Message) error {
	switch msg.Channel {
	case models.ChannelSMS:
		return smsCl.sendSMS(msg.Recipient, msg.Body)
	case models.ChannelWhatsApp:
		return smsCl.sendWhatsApp(msg.Recipient, msg.Body)
	default:
		return emailCl.send(msg.Recipient, msg.Subject, msg.Body)
	}
}

func record(msg Message, sendErr error) {
	rec := models.NotificationRecord{
		Channel:   msg.Channel,
		Recipient: msg.Recipient,
		Subject:   msg.Subject,
		RefID:     msg.RefID,
		Status:    models.NotificationSent,
		CreatedAt: time.Now(),
	}
	if sendErr != nil {
		rec.Status = models.NotificationFailed
		rec.Error = sendErr.Error()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.GetCollection("notifications").InsertOne(ctx, rec); err != nil {
		log.Error().Err(err).Msg("failed to record notification outcome")
	}
}
