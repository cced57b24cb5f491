// Package agent implements the desk assistant: an interactive chat session
// grounded on the current dashboard report.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

const systemInstruction = `
You are the analyst of a watch-trading desk. The desk's current dashboard
report is included below in markdown. Answer the trader's questions from it:
profits, hold times, monthly trends, goal progress, and contacts. Figures
you cannot read from the report are unknown; say so instead of guessing.
`

// Analyst is the AI assistant that handles the chat session.
type Analyst struct {
	w    io.Writer
	r    *bufio.Reader
	chat *genai.Chat
}

// New creates a new Analyst writing its output to w (e.g., os.Stdout) and
// reading the trader's input from r (e.g., os.Stdin).
func New(w io.Writer, r io.Reader) *Analyst {
	return &Analyst{w: w, r: bufio.NewReader(r)}
}

// Start creates the chat session, briefed with the dashboard markdown.
func (a *Analyst) Start(ctx context.Context, client *genai.Client, briefing string) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{
			{Text: systemInstruction},
			{Text: briefing},
		}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the analyst's answer.
func (a *Analyst) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "desk> "

// Run starts the interactive REPL session. Initial prompts, when given, are
// consumed before reading from the trader.
func (a *Analyst) Run(ctx context.Context, client *genai.Client, briefing string, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client, briefing); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to the watchdesk analyst. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
