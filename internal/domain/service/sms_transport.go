package service

import "context"

// SMSTransport delivers a text message to a phone number in E.164 form.
type SMSTransport interface {
	Send(ctx context.Context, phone, message string) error
}
