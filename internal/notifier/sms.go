package notifier

import (
	"fmt"

	"github.com/saphaniox/sap-technologies.ug-sub002/internal/config"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type smsClient struct {
	client       *twilio.RestClient
	from         string
	whatsAppFrom string
}

func newSMSClient(cfg config.SMSConfig) *smsClient {
	c := &smsClient{
		from:         cfg.From,
		whatsAppFrom: cfg.WhatsAppFrom,
	}
	if cfg.AccountSID != "" {
		c.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		})
	}
	return c
}

func (c *smsClient) sendSMS(to, body string) error {
	if c.client == nil {
		return fmt.Errorf("sms not configured: TWILIO_ACCOUNT_SID is empty")
	}
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetBody(body)
	_, err := c.client.Api.CreateMessage(params)
	return err
}

func (c *smsClient) sendWhatsApp(to, body string) error {
	if c.client == nil {
		return fmt.Errorf("whatsapp not configured: TWILIO_ACCOUNT_SID is empty")
	}
	params := &twilioApi.CreateMessageParams{}
	params.SetTo("whatsapp:" + to)
	params.SetFrom("whatsapp:" + c.whatsAppFrom)
	params.SetBody(body)
	_, err := c.client.Api.CreateMessage(params)
	return err
}
