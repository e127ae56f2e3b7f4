package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/household"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

const assistModel = "gemini-2.5-flash"

const assistInstruction = `You are a pragmatic household finance coach.
You receive one month's spending review as a markdown report: income,
fixed costs, variable spending and savings, with a per-category detail.
Comment on it in a short narrative: call out the biggest variable
categories, compare savings to income, and suggest at most two concrete
improvements. Stay factual, never invent numbers that are not in the
report.`

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	month string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI assistant to comment a month's review" }
func (*assistCmd) Usage() string {
	return `hhb assist [-m <month>]

  Sends the month's spending review to Gemini and prints its commentary.
  Requires a configured Gemini API key in the environment.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", household.ThisMonth().String(), "Month to review, in 2006-01 format.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, status := monthReview(c.month)
	if status != subcommands.ExitSuccess {
		return status
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: assistInstruction}}},
	}
	chat, err := client.Chats.Create(ctx, assistModel, config, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating chat:", err)
		return subcommands.ExitFailure
	}

	resp, err := chat.Send(ctx, &genai.Part{Text: report})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error asking the assistant:", err)
		return subcommands.ExitFailure
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		fmt.Fprintln(os.Stderr, "Error: empty response from the assistant.")
		return subcommands.ExitFailure
	}

	printMarkdown(resp.Candidates[0].Content.Parts[0].Text)
	return subcommands.ExitSuccess
}
