package notifier

import (
	"sync/atomic"
	"testing"

	"github.com/saphaniox/sap-technologies.ug-sub002/internal/config"
)

func TestWorkerPoolRunsAllTasks(t *testing.T) {
	pool := newWorkerPool(4)

	var counter int64
	for i := 0; i < 100; i++ {
		pool.addTask(func() {
			atomic.AddInt64(&counter, 1)
		})
	}
	pool.wait()

	if counter != 100 {
		t.Fatalf("ran %d tasks, want 100", counter)
	}
}

func TestEmailClientRequiresAPIKey(t *testing.T) {
	client := newEmailClient(config.EmailConfig{})
	if err := client.send("someone@example.com", "subject", "<p>hi</p>"); err == nil {
		t.Fatal("send without API key should fail")
	}
}

func TestSMSClientRequiresCredentials(t *testing.T) {
	client := newSMSClient(config.SMSConfig{})
	if err := client.sendSMS("+256700000000", "hello"); err == nil {
		t.Fatal("sendSMS without credentials should fail")
	}
	if err := client.sendWhatsApp("+256700000000", "hello"); err == nil {
		t.Fatal("sendWhatsApp without credentials should fail")
	}
}
