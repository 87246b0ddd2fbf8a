package dialog

import (
	"context"
	"strings"

	"navline/internal/core/directive"
	"navline/internal/core/gateway"
	"navline/internal/core/provider"
)

// ConversationalAI answers free speech with a generated reply
type ConversationalAI struct {
	base
	gw    *gateway.Gateway
	links []Provider[provider.Completer]
}

// NewConversationalAI builds the skill; links are primary then fallback models
func NewConversationalAI(gw *gateway.Gateway, digit string, links ...Provider[provider.Completer]) *ConversationalAI {
	return &ConversationalAI{
		base:  base{digit: digit, name: "שיחה עם בינה מלאכותית", prompt: "שאלו את שאלתכם"},
		gw:    gw,
		links: links,
	}
}

func textEmpty(s string) bool { return strings.TrimSpace(s) == "" }

// Execute completes the prompt and reads the reply, then returns to the menu
func (c *ConversationalAI) Execute(ctx context.Context, spokenText string) Outcome {
	chain := chainOf(c.links, textEmpty, func(p provider.Completer) gateway.Func[string] {
		return p.Complete
	})
	res := gateway.Call(ctx, c.gw, gateway.Chat, spokenText, chain)
	return fromResult(res, func(reply string) directive.Directive {
		return directive.MessageGoto(reply, directive.MenuRoot)
	})
}
