package server

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"collabhub/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	s, deps := newTestServer()
	deps.userRepo.On("GetByID", mock.Anything, uint(17)).
		Return(&models.User{ID: 17, UserType: models.UserTypeInfluencer}, nil)
	deps.messageRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Message")).
		Return(nil)

	app := testApp(3)
	app.Post("/messages", s.SendMessage)

	resp, err := app.Test(jsonRequest(t, "POST", "/messages",
		map[string]any{"recipient_id": 17, "content": "Hi, loved your portfolio"}))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var message models.Message
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&message))
	assert.Equal(t, "3-17", message.ConversationID)
	deps.messageRepo.AssertExpectations(t)
}

func TestSendMessage_ToSelf(t *testing.T) {
	s, _ := newTestServer()

	app := testApp(3)
	app.Post("/messages", s.SendMessage)

	resp, err := app.Test(jsonRequest(t, "POST", "/messages",
		map[string]any{"recipient_id": 3, "content": "Note to self"}))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSendMessage_UnknownRecipient(t *testing.T) {
	s, deps := newTestServer()
	deps.userRepo.On("GetByID", mock.Anything, uint(404)).
		Return(nil, models.NewNotFoundError("User", uint(404)))

	app := testApp(3)
	app.Post("/messages", s.SendMessage)

	resp, err := app.Test(jsonRequest(t, "POST", "/messages",
		map[string]any{"recipient_id": 404, "content": "Anyone there?"}))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetMessagesWithUser_Poll(t *testing.T) {
	s, deps := newTestServer()
	deps.messageRepo.On("GetAfter", mock.Anything, "3-17", uint(40), 50).
		Return([]models.Message{
			{ID: 41, ConversationID: "3-17", SenderID: 17, RecipientID: 3, Content: "Sounds good"},
		}, nil)

	app := testApp(3)
	app.Get("/messages/with/:userId", s.GetMessagesWithUser)

	resp, err := app.Test(httptest.NewRequest("GET", "/messages/with/17?after_id=40", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var messages []models.Message
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&messages))
	require.Len(t, messages, 1)
	assert.Equal(t, uint(41), messages[0].ID)
	deps.messageRepo.AssertExpectations(t)
}

func TestGetMessagesWithUser_FirstPage(t *testing.T) {
	s, deps := newTestServer()
	deps.messageRepo.On("GetByConversationID", mock.Anything, "3-17", 50, 0).
		Return([]models.Message{}, nil)

	app := testApp(3)
	app.Get("/messages/with/:userId", s.GetMessagesWithUser)

	resp, err := app.Test(httptest.NewRequest("GET", "/messages/with/17", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	deps.messageRepo.AssertExpectations(t)
}

func TestSendProposalMessage(t *testing.T) {
	tests := []struct {
		name                string
		senderID            uint
		expectedRecipientID uint
		expectedStatus      int
	}{
		{"influencer writes to brand", 2, 1, fiber.StatusCreated},
		{"brand writes to influencer", 1, 2, fiber.StatusCreated},
		{"third party denied", 9, 0, fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, deps := newTestServer()
			deps.proposalRepo.On("GetByID", mock.Anything, uint(3)).
				Return(proposalFixture(models.ProposalStatusAccepted), nil)
			if tt.expectedStatus == fiber.StatusCreated {
				deps.messageRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *models.Message) bool {
					return m.ConversationID == "proposal-3" && m.RecipientID == tt.expectedRecipientID
				})).Return(nil)
			}

			app := testApp(tt.senderID)
			app.Post("/proposals/:id/messages", s.SendProposalMessage)

			resp, err := app.Test(jsonRequest(t, "POST", "/proposals/3/messages",
				map[string]string{"content": "Quick question about the brief"}))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			deps.messageRepo.AssertExpectations(t)
		})
	}
}

func TestGetConversations(t *testing.T) {
	s, deps := newTestServer()
	deps.messageRepo.On("ConversationIDsForUser", mock.Anything, uint(3)).
		Return([]string{"3-17", "proposal-3"}, nil)

	app := testApp(3)
	app.Get("/conversations", s.GetConversations)

	resp, err := app.Test(httptest.NewRequest("GET", "/conversations", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Conversations []string `json:"conversations"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, []string{"3-17", "proposal-3"}, payload.Conversations)
}
