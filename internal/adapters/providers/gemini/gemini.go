// Package gemini adapts Google Gemini (google.golang.org/genai) as a conversational completer
package gemini

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"navline/internal/core/provider"
	perr "navline/internal/platform/errors"
)

// DefaultInstruction keeps replies short and speakable
const DefaultInstruction = "ענה בעברית בקצרה ובמשפטים פשוטים שמתאימים להקראה בטלפון. אל תשתמש בעיצוב, ברשימות או בקישורים."

// Options configures a Completer
type Options struct {
	APIKey      string
	Model       string
	Instruction string
	Temperature float32
}

// generator is the slice of *genai.Models the completer needs
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Completer implements provider.Completer for one model
type Completer struct {
	gen   generator
	model string
	cfg   *genai.GenerateContentConfig
}

var _ provider.Completer = (*Completer)(nil)

// New dials a genai client for o.Model
func New(ctx context.Context, o Options) (*Completer, error) {
	if strings.TrimSpace(o.APIKey) == "" {
		return nil, perr.Unauthorizedf("gemini api key not configured")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  o.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "gemini client init failed")
	}
	return newCompleter(client.Models, o), nil
}

// Unconfigured is a completer for a model without credentials; every call
// fails with ErrorCodeUnauthorized so the chain treats it as a config fault
func Unconfigured(model string) *Completer { return &Completer{model: model} }

func newCompleter(gen generator, o Options) *Completer {
	if o.Model == "" {
		o.Model = "gemini-2.5-flash"
	}
	if o.Instruction == "" {
		o.Instruction = DefaultInstruction
	}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(o.Instruction, genai.RoleUser),
	}
	if o.Temperature > 0 {
		cfg.Temperature = genai.Ptr(o.Temperature)
	}
	return &Completer{gen: gen, model: o.Model, cfg: cfg}
}

// Model returns the configured model name
func (c *Completer) Model() string { return c.model }

// Complete sends prompt as a single user turn and returns the reply text
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if c.gen == nil {
		return "", perr.Unauthorizedf("gemini api key not configured for %s", c.model)
	}
	resp, err := c.gen.GenerateContent(ctx, c.model, genai.Text(prompt), c.cfg)
	if err != nil {
		return "", classify(err)
	}
	if resp == nil {
		return "", nil
	}
	if pf := resp.PromptFeedback; pf != nil && pf.BlockReason != "" {
		return "", perr.NotFoundf("gemini prompt blocked: %s", pf.BlockReason)
	}
	return strings.TrimSpace(resp.Text()), nil
}

// classify maps genai API errors onto project codes
func classify(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "gemini transport error")
	}
	switch {
	case apiErr.Code == http.StatusUnauthorized, apiErr.Code == http.StatusForbidden:
		return perr.Wrap(err, perr.ErrorCodeUnauthorized, "gemini rejected credentials")
	case apiErr.Code == http.StatusTooManyRequests:
		return perr.Wrap(err, perr.ErrorCodeTooManyRequests, "gemini quota exhausted")
	case apiErr.Code == http.StatusNotFound:
		return perr.Wrap(err, perr.ErrorCodeUnauthorized, "gemini model not found")
	case apiErr.Code >= 500:
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "gemini upstream error")
	default:
		return perr.Wrap(err, perr.ErrorCodeInvalidArgument, "gemini rejected request")
	}
}
