package nearagent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// View posts {methodName,args} to the agent's view endpoint.
func (a *agentImpl) View(ctx context.Context, method string, args any) (json.RawMessage, error) {
	status, body, err := a.post(ctx, viewPath, methodRequest{MethodName: method, Args: args})
	if err != nil {
		return nil, fmt.Errorf("agent view %s: %w", method, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("agent view %s: status %d: %s", method, status, strings.TrimSpace(string(body)))
	}

	var vr viewResponse
	if err := json.Unmarshal(body, &vr); err == nil && len(vr.Result) > 0 {
		return vr.Result, nil
	}
	return json.RawMessage(body), nil
}

// Call posts {methodName,args} to the agent's call endpoint.
func (a *agentImpl) Call(ctx context.Context, method string, args any) (*CallResult, error) {
	status, body, err := a.post(ctx, callPath, methodRequest{MethodName: method, Args: args})
	if err != nil {
		return nil, &CallError{Method: method, Err: err}
	}

	var cr callResponse
	decodeErr := json.Unmarshal(body, &cr)

	if status < 200 || status >= 300 {
		msg := strings.TrimSpace(string(body))
		if decodeErr == nil && cr.Error != "" {
			msg = cr.Error
		}
		return nil, &CallError{Method: method, StatusCode: status, TxHash: cr.hash(), Err: errors.New(msg)}
	}
	if decodeErr != nil {
		return nil, &CallError{Method: method, StatusCode: status, Submitted: true, Unconfirmed: true,
			Err: fmt.Errorf("decode response: %w", decodeErr)}
	}
	if f := cr.failure(); f != "" {
		return nil, &CallError{Method: method, StatusCode: status, TxHash: cr.hash(), Submitted: true, Err: errors.New(f)}
	}

	return &CallResult{TxHash: cr.hash(), Result: cr.Result}, nil
}

// AccountID asks the agent which account it signs for.
func (a *agentImpl) AccountID(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+accountPath, nil)
	if err != nil {
		return "", fmt.Errorf("agent account: build request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("agent account: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("agent account: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var ar accountResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return "", fmt.Errorf("agent account: decode: %w", err)
	}
	if ar.AccountID == "" {
		return "", ErrEmptyAccount
	}
	return ar.AccountID, nil
}

func (a *agentImpl) post(ctx context.Context, path string, in any) (int, []byte, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return 0, nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, body, nil
}
