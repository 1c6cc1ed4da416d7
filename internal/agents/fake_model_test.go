package agents

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// fakeChatModel replays a scripted sequence of assistant turns and records
// the message histories it was called with.
type fakeChatModel struct {
	replies []*schema.Message
	calls   [][]*schema.Message
	err     error
}

func (f *fakeChatModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.calls = append(f.calls, input)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.replies) == 0 {
		return nil, fmt.Errorf("fake model: no scripted reply left")
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return reply, nil
}

func (f *fakeChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, fmt.Errorf("fake model: streaming not supported")
}

func assistantReply(content string) *schema.Message {
	return &schema.Message{Role: schema.Assistant, Content: content}
}

func assistantToolCall(name, args string) *schema.Message {
	return &schema.Message{
		Role: schema.Assistant,
		ToolCalls: []schema.ToolCall{
			{ID: "call_1", Function: schema.FunctionCall{Name: name, Arguments: args}},
		},
	}
}
