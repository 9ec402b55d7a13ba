package client

import (
	"context"
	"fmt"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

type ContactService struct {
	client *Client
}

func (c *Client) Contact() *ContactService {
	return &ContactService{client: c}
}

func (s *ContactService) GetAll(ctx context.Context) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := s.client.do(ctx, "GET", "/admin/messages", nil, &messages)
	return messages, err
}

func (s *ContactService) GetByID(ctx context.Context, id uint) (models.ContactMessage, error) {
	var message models.ContactMessage
	err := s.client.do(ctx, "GET", fmt.Sprintf("/admin/messages/%d", id), nil, &message)
	return message, err
}

func (s *ContactService) MarkRead(ctx context.Context, id uint) error {
	return s.client.do(ctx, "PUT", fmt.Sprintf("/admin/messages/%d/read", id), nil, nil)
}

type Reply struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (s *ContactService) Reply(ctx context.Context, id uint, reply Reply) (models.ContactMessage, error) {
	var message models.ContactMessage
	err := s.client.do(ctx, "POST", fmt.Sprintf("/admin/messages/%d/reply", id), reply, &message)
	return message, err
}
