package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"drip/app/common/consts/biz"

	"github.com/zeromicro/go-zero/rest/httpc"
)

const requestJSONField = "request_json"

// Client is a thin HTTP client over the external stylist backend. Calls are
// fire-once: no retry, no client-side timeout beyond the transport's own.
type Client struct {
	baseURL string
	service httpc.Service
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		service: httpc.NewService("stylist-backend"),
	}
}

// Recommend submits the intent-derived payload as a multipart form with a
// single request_json field, which is the shape the backend's recommend
// endpoint expects. The bearer token is attached only when present.
func (c *Client) Recommend(ctx context.Context, token string, req *RecommendRequest) (*RecommendResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal recommend payload: %w", err)
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField(requestJSONField, string(payload)); err != nil {
		return nil, fmt.Errorf("build recommend form: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("build recommend form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/recommend", &body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", form.FormDataContentType())
	setBearer(httpReq, token)

	resp, err := c.service.DoRequest(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, statusError("recommend", resp)
	}

	var out RecommendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode recommend response: %w", err)
	}
	return &out, nil
}

// Chat forwards a free-form message plus recent history to the backend's
// general chat endpoint. An empty reply is treated as a failure by callers.
func (c *Client) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	var out ChatResponse
	if err := c.postJSON(ctx, "/v1/chat", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, req *LoginRequest) (*Token, error) {
	var out Token
	if err := c.postJSON(ctx, "/v1/auth/login", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Signup(ctx context.Context, req *SignupRequest) (*Token, error) {
	var out Token
	if err := c.postJSON(ctx, "/v1/auth/signup", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	var out User
	if err := c.getJSON(ctx, "/v1/auth/me", token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SavedOutfits(ctx context.Context, token string) ([]SavedOutfit, error) {
	var out []SavedOutfit
	if err := c.getJSON(ctx, "/v1/saved-outfits", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) History(ctx context.Context, token string) (*HistoryResponse, error) {
	var out HistoryResponse
	if err := c.getJSON(ctx, "/v1/history", token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SaveOutfit(ctx context.Context, token string, payload map[string]interface{}) (*OkReply, error) {
	var out OkReply
	if err := c.postJSON(ctx, "/v1/save-outfit", token, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteOutfit(ctx context.Context, token, outfitID string) (*OkReply, error) {
	path := "/v1/delete-outfit/" + url.PathEscape(outfitID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	setBearer(httpReq, token)

	resp, err := c.service.DoRequest(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, statusError("delete-outfit", resp)
	}

	var out OkReply
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode delete-outfit response: %w", err)
	}
	return &out, nil
}

func (c *Client) postJSON(ctx context.Context, path, token string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", path, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	setBearer(httpReq, token)

	return c.do(path, httpReq, out)
}

func (c *Client) getJSON(ctx context.Context, path, token string, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	setBearer(httpReq, token)

	return c.do(path, httpReq, out)
}

func (c *Client) do(path string, httpReq *http.Request, out interface{}) error {
	resp, err := c.service.DoRequest(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusError(path, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func setBearer(r *http.Request, token string) {
	if token != "" {
		r.Header.Set(biz.AUTHORIZATION, biz.BEARER_PREFIX+token)
	}
}

func statusError(path string, resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	msg := strings.TrimSpace(string(snippet))
	if msg == "" {
		msg = resp.Status
	}
	return fmt.Errorf("%s: backend returned %d: %s", path, resp.StatusCode, msg)
}
