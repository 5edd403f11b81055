package cdp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// TargetInfo describes an attachable target (tab, extension page, worker).
type TargetInfo struct {
	TargetID         string `json:"targetId"`
	Type             string `json:"type"`
	Title            string `json:"title"`
	URL              string `json:"url"`
	Attached         bool   `json:"attached"`
	BrowserContextID string `json:"browserContextId,omitempty"`
}

// Session is a flat-mode attachment to a single target. Commands issued
// through it carry the session id and act on that target only.
type Session struct {
	client   *Client
	ID       string
	TargetID string
}

// Client returns the underlying connection, for event subscriptions.
func (s *Session) Client() *Client { return s.client }

// Call issues a command scoped to this session.
func (s *Session) Call(ctx context.Context, method string, params, out interface{}) error {
	return s.client.Call(ctx, s.ID, method, params, out)
}

// GetTargets lists all targets known to the browser.
func (c *Client) GetTargets(ctx context.Context) ([]TargetInfo, error) {
	var resp struct {
		TargetInfos []TargetInfo `json:"targetInfos"`
	}
	if err := c.Call(ctx, "", "Target.getTargets", nil, &resp); err != nil {
		return nil, err
	}
	return resp.TargetInfos, nil
}

// CreateTarget opens a new tab at url and returns its target id.
func (c *Client) CreateTarget(ctx context.Context, url string) (string, error) {
	var resp struct {
		TargetID string `json:"targetId"`
	}
	params := map[string]interface{}{"url": url}
	if err := c.Call(ctx, "", "Target.createTarget", params, &resp); err != nil {
		return "", err
	}
	return resp.TargetID, nil
}

// AttachToTarget attaches in flat mode and returns the session.
func (c *Client) AttachToTarget(ctx context.Context, targetID string) (*Session, error) {
	var resp struct {
		SessionID string `json:"sessionId"`
	}
	params := map[string]interface{}{"targetId": targetID, "flatten": true}
	if err := c.Call(ctx, "", "Target.attachToTarget", params, &resp); err != nil {
		return nil, err
	}
	return &Session{client: c, ID: resp.SessionID, TargetID: targetID}, nil
}

// CloseTarget closes a tab.
func (c *Client) CloseTarget(ctx context.Context, targetID string) error {
	params := map[string]interface{}{"targetId": targetID}
	return c.Call(ctx, "", "Target.closeTarget", params, nil)
}

// EnablePage enables Page domain events for the session.
func (s *Session) EnablePage(ctx context.Context) error {
	return s.Call(ctx, "Page.enable", nil, nil)
}

// EnableRuntime enables Runtime domain events for the session.
func (s *Session) EnableRuntime(ctx context.Context) error {
	return s.Call(ctx, "Runtime.enable", nil, nil)
}

// BringToFront focuses the session's tab.
func (s *Session) BringToFront(ctx context.Context) error {
	return s.Call(ctx, "Page.bringToFront", nil, nil)
}

// Navigate drives the tab to url. Network-level failures surface in the
// returned error verbatim (net::ERR_* codes included).
func (s *Session) Navigate(ctx context.Context, url string) error {
	var resp struct {
		FrameID   string `json:"frameId"`
		ErrorText string `json:"errorText"`
	}
	params := map[string]interface{}{"url": url}
	if err := s.Call(ctx, "Page.navigate", params, &resp); err != nil {
		return err
	}
	if resp.ErrorText != "" {
		return fmt.Errorf("navigation to %s failed: %s", url, resp.ErrorText)
	}
	return nil
}

// HistoryBack navigates one entry back, if history allows it.
func (s *Session) HistoryBack(ctx context.Context) error {
	var hist struct {
		CurrentIndex int `json:"currentIndex"`
		Entries      []struct {
			ID int `json:"id"`
		} `json:"entries"`
	}
	if err := s.Call(ctx, "Page.getNavigationHistory", nil, &hist); err != nil {
		return err
	}
	if hist.CurrentIndex <= 0 {
		return fmt.Errorf("no history entry to go back to")
	}
	params := map[string]interface{}{"entryId": hist.Entries[hist.CurrentIndex-1].ID}
	return s.Call(ctx, "Page.navigateToHistoryEntry", params, nil)
}

// CaptureScreenshot returns the tab's viewport as PNG bytes.
func (s *Session) CaptureScreenshot(ctx context.Context) ([]byte, error) {
	var resp struct {
		Data string `json:"data"`
	}
	params := map[string]interface{}{"format": "png"}
	if err := s.Call(ctx, "Page.captureScreenshot", params, &resp); err != nil {
		return nil, err
	}
	raw, err := base64.StdEncoding.DecodeString(resp.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode screenshot payload: %w", err)
	}
	return raw, nil
}

// EvalException carries a thrown JavaScript exception from Evaluate.
type EvalException struct {
	Text string
}

func (e *EvalException) Error() string {
	return fmt.Sprintf("evaluation threw: %s", e.Text)
}

// Evaluate runs a JavaScript expression in the tab, awaiting promises,
// and decodes the by-value result into out (which may be nil).
func (s *Session) Evaluate(ctx context.Context, expression string, out interface{}) error {
	var resp struct {
		Result struct {
			Type        string          `json:"type"`
			Value       json.RawMessage `json:"value"`
			Description string          `json:"description"`
		} `json:"result"`
		ExceptionDetails *struct {
			Text      string `json:"text"`
			Exception *struct {
				Description string `json:"description"`
			} `json:"exception"`
		} `json:"exceptionDetails"`
	}
	params := map[string]interface{}{
		"expression":    expression,
		"returnByValue": true,
		"awaitPromise":  true,
	}
	if err := s.Call(ctx, "Runtime.evaluate", params, &resp); err != nil {
		return err
	}
	if resp.ExceptionDetails != nil {
		text := resp.ExceptionDetails.Text
		if resp.ExceptionDetails.Exception != nil && resp.ExceptionDetails.Exception.Description != "" {
			text = resp.ExceptionDetails.Exception.Description
		}
		return &EvalException{Text: text}
	}
	if out != nil && len(resp.Result.Value) > 0 {
		if err := json.Unmarshal(resp.Result.Value, out); err != nil {
			return fmt.Errorf("failed to decode evaluation result: %w", err)
		}
	}
	return nil
}

// DispatchMouseClick synthesizes a left-button click at viewport
// coordinates.
func (s *Session) DispatchMouseClick(ctx context.Context, x, y float64) error {
	for _, typ := range []string{"mousePressed", "mouseReleased"} {
		params := map[string]interface{}{
			"type":       typ,
			"x":          x,
			"y":          y,
			"button":     "left",
			"buttons":    1,
			"clickCount": 1,
		}
		if err := s.Call(ctx, "Input.dispatchMouseEvent", params, nil); err != nil {
			return err
		}
	}
	return nil
}

// DispatchMouseWheel scrolls by the given deltas at viewport coordinates.
func (s *Session) DispatchMouseWheel(ctx context.Context, x, y, deltaX, deltaY float64) error {
	params := map[string]interface{}{
		"type":   "mouseWheel",
		"x":      x,
		"y":      y,
		"deltaX": deltaX,
		"deltaY": deltaY,
	}
	return s.Call(ctx, "Input.dispatchMouseEvent", params, nil)
}

// InsertText types text into the focused element as if pasted.
func (s *Session) InsertText(ctx context.Context, text string) error {
	params := map[string]interface{}{"text": text}
	return s.Call(ctx, "Input.insertText", params, nil)
}

// KeySpec describes a non-text key press.
type KeySpec struct {
	Key                   string
	Code                  string
	WindowsVirtualKeyCode int
	Text                  string
}

// wellKnownKeys maps the key names step code and the agent use to CDP
// key event fields.
var wellKnownKeys = map[string]KeySpec{
	"Enter":      {Key: "Enter", Code: "Enter", WindowsVirtualKeyCode: 13, Text: "\r"},
	"Tab":        {Key: "Tab", Code: "Tab", WindowsVirtualKeyCode: 9},
	"Escape":     {Key: "Escape", Code: "Escape", WindowsVirtualKeyCode: 27},
	"Backspace":  {Key: "Backspace", Code: "Backspace", WindowsVirtualKeyCode: 8},
	"Delete":     {Key: "Delete", Code: "Delete", WindowsVirtualKeyCode: 46},
	"ArrowUp":    {Key: "ArrowUp", Code: "ArrowUp", WindowsVirtualKeyCode: 38},
	"ArrowDown":  {Key: "ArrowDown", Code: "ArrowDown", WindowsVirtualKeyCode: 40},
	"ArrowLeft":  {Key: "ArrowLeft", Code: "ArrowLeft", WindowsVirtualKeyCode: 37},
	"ArrowRight": {Key: "ArrowRight", Code: "ArrowRight", WindowsVirtualKeyCode: 39},
	"Home":       {Key: "Home", Code: "Home", WindowsVirtualKeyCode: 36},
	"End":        {Key: "End", Code: "End", WindowsVirtualKeyCode: 35},
	"PageUp":     {Key: "PageUp", Code: "PageUp", WindowsVirtualKeyCode: 33},
	"PageDown":   {Key: "PageDown", Code: "PageDown", WindowsVirtualKeyCode: 34},
	"Space":      {Key: " ", Code: "Space", WindowsVirtualKeyCode: 32, Text: " "},
}

// LookupKey resolves a key name. Single characters fall through as
// plain text keys.
func LookupKey(name string) (KeySpec, bool) {
	if spec, ok := wellKnownKeys[name]; ok {
		return spec, true
	}
	if len([]rune(name)) == 1 {
		return KeySpec{Key: name, Text: name}, true
	}
	return KeySpec{}, false
}

// DispatchKey synthesizes a key press (down + up).
func (s *Session) DispatchKey(ctx context.Context, spec KeySpec) error {
	down := map[string]interface{}{
		"type": "rawKeyDown",
		"key":  spec.Key,
	}
	if spec.Code != "" {
		down["code"] = spec.Code
	}
	if spec.WindowsVirtualKeyCode != 0 {
		down["windowsVirtualKeyCode"] = spec.WindowsVirtualKeyCode
		down["nativeVirtualKeyCode"] = spec.WindowsVirtualKeyCode
	}
	if spec.Text != "" {
		down["type"] = "keyDown"
		down["text"] = spec.Text
	}
	if err := s.Call(ctx, "Input.dispatchKeyEvent", down, nil); err != nil {
		return err
	}
	up := map[string]interface{}{
		"type": "keyUp",
		"key":  spec.Key,
	}
	if spec.Code != "" {
		up["code"] = spec.Code
	}
	if spec.WindowsVirtualKeyCode != 0 {
		up["windowsVirtualKeyCode"] = spec.WindowsVirtualKeyCode
		up["nativeVirtualKeyCode"] = spec.WindowsVirtualKeyCode
	}
	return s.Call(ctx, "Input.dispatchKeyEvent", up, nil)
}

// SetViewport overrides device metrics for deterministic rendering.
func (s *Session) SetViewport(ctx context.Context, width, height int) error {
	params := map[string]interface{}{
		"width":             width,
		"height":            height,
		"deviceScaleFactor": 1,
		"mobile":            false,
	}
	return s.Call(ctx, "Emulation.setDeviceMetricsOverride", params, nil)
}

// ScreencastOptions configure Page.startScreencast. The browser performs
// the JPEG encode, downscale, and frame thinning natively.
type ScreencastOptions struct {
	Quality       int
	MaxWidth      int
	MaxHeight     int
	EveryNthFrame int
}

// StartScreencast begins frame delivery via Page.screencastFrame events.
func (s *Session) StartScreencast(ctx context.Context, opts ScreencastOptions) error {
	params := map[string]interface{}{
		"format":        "jpeg",
		"quality":       opts.Quality,
		"maxWidth":      opts.MaxWidth,
		"maxHeight":     opts.MaxHeight,
		"everyNthFrame": opts.EveryNthFrame,
	}
	return s.Call(ctx, "Page.startScreencast", params, nil)
}

// StopScreencast halts frame delivery.
func (s *Session) StopScreencast(ctx context.Context) error {
	return s.Call(ctx, "Page.stopScreencast", nil, nil)
}

// AckScreencastFrame acknowledges receipt so the browser keeps sending.
func (s *Session) AckScreencastFrame(ctx context.Context, frameSessionID int) error {
	params := map[string]interface{}{"sessionId": frameSessionID}
	return s.Call(ctx, "Page.screencastFrameAck", params, nil)
}

// ScreencastFrame is the payload of a Page.screencastFrame event.
type ScreencastFrame struct {
	Data     string `json:"data"`
	Metadata struct {
		DeviceWidth  float64 `json:"deviceWidth"`
		DeviceHeight float64 `json:"deviceHeight"`
		Timestamp    float64 `json:"timestamp"`
	} `json:"metadata"`
	SessionID int `json:"sessionId"`
}
