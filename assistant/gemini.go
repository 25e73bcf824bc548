// Package assistant wraps the remote Gemini inference service used for
// the shop chat assistant and fabric image analysis. Both calls are
// stateless, single-shot request/response with no retry policy.
package assistant

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-3-pro-preview"

	// historyWindow bounds how many prior turns are sent with a chat
	// message.
	historyWindow = 5

	systemInstruction = "You are BusyBot, an expert AI assistant for a textile shop called 'Busy Textile'. " +
		"You help shop owners with inventory advice, fabric knowledge, sales trends analysis, and general " +
		"business questions. Be concise, professional, and helpful."

	imagePrompt = "Analyze this image for a textile shop inventory system. Identify the material " +
		"(e.g., Cotton, Silk), the likely pattern (e.g., Floral, Plain), color, and suggest a product " +
		"name and short description. Format the output clearly."
)

// ChatTurn is one prior exchange in the conversation. Role is "user"
// or "model".
type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		http:    &http.Client{},
	}
}

// -------- Wire types --------

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
	Contents          []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// -------- Calls --------

// Chat sends the message plus a bounded window of prior turns under the
// fixed shop persona and returns the generated text.
func (c *Client) Chat(message string, history []ChatTurn) (string, error) {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	contents := make([]content, 0, len(history)+1)
	for _, turn := range history {
		role := turn.Role
		if role != "model" {
			role = "user"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: turn.Text}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: message}}})

	text, err := c.generate(generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		Contents:          contents,
	})
	if err != nil {
		return "", fmt.Errorf("failed to communicate with the assistant: %w", err)
	}
	return text, nil
}

// AnalyzeImage sends an image with the fixed instructional prompt and
// returns the model's description.
func (c *Client) AnalyzeImage(image []byte, mimeType string) (string, error) {
	text, err := c.generate(generateRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{Text: imagePrompt},
				{InlineData: &inlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
			},
		}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to analyze the image: %w", err)
	}
	return text, nil
}

func (c *Client) generate(reqBody generateRequest) (string, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequest("POST", endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach the model endpoint: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model API error (%d): %s", resp.StatusCode, string(body))
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("failed to parse model response: %v", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("model error: %s", out.Error.Message)
	}

	var text string
	for _, cand := range out.Candidates {
		for _, p := range cand.Content.Parts {
			text += p.Text
		}
		if text != "" {
			break
		}
	}
	if text == "" {
		return "", errors.New("model returned no text")
	}
	return text, nil
}
