package llm

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed completion_prompt.md
var completionPromptBase string

// CompletionPrompt builds the instruction the native shims send in
// completion mode. With an engineer name present, the prompt asks the
// model to personalize roughly 30% of the time; the probability lives
// in the instruction, not in code.
func CompletionPrompt(engineerName string) string {
	name := strings.TrimSpace(engineerName)

	var b strings.Builder
	b.WriteString(strings.TrimSpace(completionPromptBase))
	b.WriteString("\n")
	if name != "" {
		fmt.Fprintf(&b, "- Sometimes (about 30%% of the time) include the engineer's name '%s' in a natural way\n", name)
		b.WriteString("\nExamples of the style:\n")
		b.WriteString("- Standard: \"Work complete!\", \"All done!\", \"Task finished!\", \"Ready for your next move!\"\n")
		fmt.Fprintf(&b, "- Personalized: \"%[1]s, all set!\", \"Ready for you, %[1]s!\", \"Complete, %[1]s!\", \"%[1]s, we're done!\"\n", name)
	} else {
		b.WriteString("\nExamples of the style: \"Work complete!\", \"All done!\", \"Task finished!\", \"Ready for your next move!\"\n")
	}
	b.WriteString("\nGenerate ONE completion message:")
	return b.String()
}

// CleanResponse normalizes a model reply to a single unquoted line.
func CleanResponse(response string) string {
	response = strings.TrimSpace(response)
	response = strings.Trim(response, "\"'")
	response = strings.TrimSpace(response)
	if i := strings.IndexByte(response, '\n'); i >= 0 {
		response = strings.TrimSpace(response[:i])
	}
	return response
}
