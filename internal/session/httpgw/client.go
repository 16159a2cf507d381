// Package httpgw implements session.Gateway over the REST API, so the
// terminal client and the server share one backend contract.
package httpgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/parlezvous/parlezvous-backend/internal/domain"
)

const requestTimeout = 15 * time.Second

// Client is an authenticated HTTP client for the practice backend.
// The zero token means anonymous; Login or SetToken installs one.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// NewClient creates a Client for the given base URL (no trailing slash).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// SetToken installs a bearer token for subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Wire types, mirroring the REST API's JSON shapes.

type wireProfile struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	LearningLanguage string `json:"learningLanguage"`
	LearningLevel    string `json:"learningLevel"`
}

type wireAuth struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         wireProfile `json:"user"`
}

type wireTopic struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Difficulty  string    `json:"difficulty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type wireExchange struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	Role           string    `json:"role"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
	Accuracy       *float64  `json:"accuracy"`
	Feedback       *string   `json:"feedback"`
}

type wireConversation struct {
	ID        string         `json:"id"`
	TopicID   string         `json:"topicId"`
	StartedAt time.Time      `json:"startedAt"`
	EndedAt   *time.Time     `json:"endedAt"`
	Duration  *int           `json:"duration"`
	Accuracy  *float64       `json:"accuracy"`
	Exchanges []wireExchange `json:"exchanges"`
}

// Login authenticates with email and password and installs the returned
// access token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Profile, error) {
	var resp wireAuth
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/login",
		map[string]string{"email": email, "password": password}, &resp)
	if err != nil {
		return nil, err
	}
	c.SetToken(resp.AccessToken)
	return toProfile(resp.User)
}

// Register creates an account and installs the returned access token.
func (c *Client) Register(ctx context.Context, displayName, email, password string) (*domain.Profile, error) {
	var resp wireAuth
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/register",
		map[string]string{"displayName": displayName, "email": email, "password": password}, &resp)
	if err != nil {
		return nil, err
	}
	c.SetToken(resp.AccessToken)
	return toProfile(resp.User)
}

// ListTopics returns the active topic catalog.
func (c *Client) ListTopics(ctx context.Context) ([]*domain.Topic, error) {
	var resp struct {
		Topics []wireTopic `json:"topics"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/topics", nil, &resp); err != nil {
		return nil, err
	}
	topics := make([]*domain.Topic, 0, len(resp.Topics))
	for _, wt := range resp.Topics {
		t, err := toTopic(wt)
		if err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, nil
}

// CurrentUser resolves the token to a user ID via the profile endpoint.
func (c *Client) CurrentUser(ctx context.Context) (uuid.UUID, error) {
	if c.bearer() == "" {
		return uuid.Nil, domain.ErrUnauthorized
	}
	var resp wireProfile
	if err := c.do(ctx, http.MethodGet, "/api/v1/profile", nil, &resp); err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(resp.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse profile id: %w", err)
	}
	return id, nil
}

// GetTopic fetches one topic by ID.
func (c *Client) GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	var resp wireTopic
	if err := c.do(ctx, http.MethodGet, "/api/v1/topics/"+topicID.String(), nil, &resp); err != nil {
		return nil, err
	}
	return toTopic(resp)
}

// ConversationHistory lists the caller's conversations on a topic.
// The userID argument is implied by the bearer token server-side.
func (c *Client) ConversationHistory(ctx context.Context, _ uuid.UUID, topicID uuid.UUID) ([]*domain.Conversation, error) {
	var resp struct {
		Conversations []wireConversation `json:"conversations"`
	}
	path := "/api/v1/conversations/history?topicId=" + topicID.String()
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	convs := make([]*domain.Conversation, 0, len(resp.Conversations))
	for _, wc := range resp.Conversations {
		conv, err := toConversation(wc)
		if err != nil {
			return nil, err
		}
		convs = append(convs, conv)
	}
	return convs, nil
}

// CreateSession starts (or resumes) a conversation on a topic.
func (c *Client) CreateSession(ctx context.Context, _ uuid.UUID, topicID uuid.UUID) (*domain.Conversation, error) {
	var resp struct {
		Conversation wireConversation `json:"conversation"`
	}
	err := c.do(ctx, http.MethodPost, "/api/v1/conversations/start",
		map[string]string{"topicId": topicID.String()}, &resp)
	if err != nil {
		return nil, err
	}
	return toConversation(resp.Conversation)
}

// AppendExchange stores one exchange and returns the stored record.
func (c *Client) AppendExchange(ctx context.Context, ex *domain.Exchange) (*domain.Exchange, error) {
	body := map[string]any{
		"role":    ex.Role.String(),
		"message": ex.Message,
	}
	if ex.Accuracy != nil {
		body["accuracy"] = *ex.Accuracy
	}
	if ex.Feedback != nil {
		body["feedback"] = *ex.Feedback
	}

	var resp wireExchange
	path := "/api/v1/conversations/" + ex.ConversationID.String() + "/exchanges"
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, err
	}
	return toExchange(resp)
}

// CloseSession ends a conversation. The server recomputes duration and
// accuracy from its own records, so the client's view travels nowhere.
func (c *Client) CloseSession(ctx context.Context, sessionID uuid.UUID, _ time.Time, _ int, _ *float64) (*domain.Conversation, error) {
	var resp wireConversation
	path := "/api/v1/conversations/" + sessionID.String() + "/close"
	if err := c.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return nil, err
	}
	return toConversation(resp)
}

// do performs one JSON request/response round trip.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return statusError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError maps HTTP status codes back to domain sentinels so the
// session machine sees the same errors as server-side callers.
func statusError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	json.NewDecoder(resp.Body).Decode(&body) //nolint:errcheck
	msg := body.Error
	if msg == "" {
		msg = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("%s: %w", msg, domain.ErrValidation)
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", msg, domain.ErrUnauthorized)
	case http.StatusForbidden:
		return fmt.Errorf("%s: %w", msg, domain.ErrForbidden)
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", msg, domain.ErrNotFound)
	case http.StatusConflict:
		return fmt.Errorf("%s: %w", msg, domain.ErrConflict)
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, msg)
	}
}

func toProfile(w wireProfile) (*domain.Profile, error) {
	id, err := uuid.Parse(w.ID)
	if err != nil {
		return nil, fmt.Errorf("parse profile id: %w", err)
	}
	return &domain.Profile{
		ID:               id,
		DisplayName:      w.DisplayName,
		Email:            w.Email,
		Role:             domain.UserRole(w.Role),
		IsAdmin:          domain.UserRole(w.Role).IsAdmin(),
		LearningLanguage: w.LearningLanguage,
		LearningLevel:    w.LearningLevel,
	}, nil
}

func toTopic(w wireTopic) (*domain.Topic, error) {
	id, err := uuid.Parse(w.ID)
	if err != nil {
		return nil, fmt.Errorf("parse topic id: %w", err)
	}
	return &domain.Topic{
		ID:          id,
		Title:       w.Title,
		Description: w.Description,
		Category:    w.Category,
		Difficulty:  domain.Difficulty(w.Difficulty),
		IsActive:    w.IsActive,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}, nil
}

func toExchange(w wireExchange) (*domain.Exchange, error) {
	id, err := uuid.Parse(w.ID)
	if err != nil {
		return nil, fmt.Errorf("parse exchange id: %w", err)
	}
	convID, err := uuid.Parse(w.ConversationID)
	if err != nil {
		return nil, fmt.Errorf("parse conversation id: %w", err)
	}
	return &domain.Exchange{
		ID:             id,
		ConversationID: convID,
		Role:           domain.ExchangeRole(w.Role),
		Message:        w.Message,
		Timestamp:      w.Timestamp,
		Accuracy:       w.Accuracy,
		Feedback:       w.Feedback,
	}, nil
}

func toConversation(w wireConversation) (*domain.Conversation, error) {
	id, err := uuid.Parse(w.ID)
	if err != nil {
		return nil, fmt.Errorf("parse conversation id: %w", err)
	}
	topicID, err := uuid.Parse(w.TopicID)
	if err != nil {
		return nil, fmt.Errorf("parse topic id: %w", err)
	}

	conv := &domain.Conversation{
		ID:        id,
		TopicID:   topicID,
		StartedAt: w.StartedAt,
		EndedAt:   w.EndedAt,
		Duration:  w.Duration,
		Accuracy:  w.Accuracy,
		Exchanges: make([]domain.Exchange, 0, len(w.Exchanges)),
	}
	for _, we := range w.Exchanges {
		ex, err := toExchange(we)
		if err != nil {
			return nil, err
		}
		conv.Exchanges = append(conv.Exchanges, *ex)
	}
	return conv, nil
}
