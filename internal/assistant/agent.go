package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/praqsys/edidctl/internal/edid"
	"github.com/rs/zerolog/log"
)

// HistoryEntry is one prior conversation turn, as the UI stores it.
type HistoryEntry struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Reply is the agent's answer: the text to show the user, plus an optional
// sparse parameter update extracted from the model's response. The caller
// merges Update through the consistency engine; the agent never touches the
// record itself.
type Reply struct {
	Text   string              `json:"text"`
	Update *edid.PartialParams `json:"update,omitempty"`
}

// Agent wraps the chat Client with display-timing context building.
type Agent struct {
	client *Client
}

// NewAgent creates the display-timing assistant backed by client.
func NewAgent(client *Client) *Agent {
	return &Agent{client: client}
}

// Configured reports whether the underlying client can reach a model.
func (a *Agent) Configured() bool {
	return a != nil && a.client.Configured()
}

// Analyze sends the user's message with conversation history and the current
// parameter record as context, and returns the reply. A response the model
// fails to structure is still returned as plain text with no update.
func (a *Agent) Analyze(ctx context.Context, history []HistoryEntry, message string, current edid.Params) (Reply, error) {
	raw, err := a.client.Chat(ctx, a.buildMessages(history, message, current))
	if err != nil {
		return Reply{}, err
	}

	raw = stripCodeFence(raw)

	var resp struct {
		Reply  string          `json:"reply"`
		Update json.RawMessage `json:"update"`
	}
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		log.Warn().Err(err).Msg("assistant reply was not structured, returning as text")
		return Reply{Text: raw}, nil
	}

	reply := Reply{Text: resp.Reply}
	if len(resp.Update) != 0 && string(resp.Update) != "null" {
		reply.Update = parsePartial(resp.Update)
	}
	return reply, nil
}

func (a *Agent) buildMessages(history []HistoryEntry, message string, current edid.Params) []Message {
	msgs := []Message{{Role: RoleSystem, Content: systemPrompt}}

	if ctxBlock := paramsContext(current); ctxBlock != "" {
		msgs = append(msgs, Message{Role: RoleUser, Content: ctxBlock})
	}

	for _, h := range history {
		role := RoleUser
		if h.Role == RoleAssistant || h.Role == "model" {
			role = RoleAssistant
		}
		msgs = append(msgs, Message{Role: role, Content: h.Text})
	}

	return append(msgs, Message{Role: RoleUser, Content: message})
}

func paramsContext(p edid.Params) string {
	data, err := json.Marshal(p)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("Current form state (JSON):\n%s", data)
}

// parsePartial extracts numeric and string fields from the model's update
// object. Members of the wrong type are dropped one by one instead of
// rejecting the whole update.
func parsePartial(raw json.RawMessage) *edid.PartialParams {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		log.Warn().Err(err).Msg("assistant update object unparseable, dropped")
		return nil
	}

	pp := &edid.PartialParams{}
	if s, ok := obj["displayName"].(string); ok {
		pp.DisplayName = &s
	}

	numeric := func(key string) *float64 {
		v, ok := obj[key].(float64)
		if !ok {
			return nil
		}
		return &v
	}
	pp.PixelClock = numeric("pixelClock")
	pp.HAddressable = numeric("hAddressable")
	pp.HBlanking = numeric("hBlanking")
	pp.VAddressable = numeric("vAddressable")
	pp.VBlanking = numeric("vBlanking")
	pp.HFrontPorch = numeric("hFrontPorch")
	pp.HSyncWidth = numeric("hSyncWidth")
	pp.VFrontPorch = numeric("vFrontPorch")
	pp.VSyncWidth = numeric("vSyncWidth")
	pp.HImageSize = numeric("hImageSize")
	pp.VImageSize = numeric("vImageSize")
	pp.HBorder = numeric("hBorder")
	pp.VBorder = numeric("vBorder")
	pp.RefreshRate = numeric("refreshRate")

	if color, ok := obj["colorimetry"].(map[string]any); ok {
		coord := func(key string) *float64 {
			v, ok := color[key].(float64)
			if !ok {
				return nil
			}
			return &v
		}
		pp.Colorimetry = &edid.PartialColorimetry{
			RedX: coord("redX"), RedY: coord("redY"),
			GreenX: coord("greenX"), GreenY: coord("greenY"),
			BlueX: coord("blueX"), BlueY: coord("blueY"),
			WhiteX: coord("whiteX"), WhiteY: coord("whiteY"),
		}
	}

	if pp.IsEmpty() {
		return nil
	}
	return pp
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}
