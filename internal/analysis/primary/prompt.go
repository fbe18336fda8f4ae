package primary

import (
	"encoding/json"
	"fmt"
	"strings"
)

const systemPrompt = `You read messages that wedding vendors send to a couple and extract planning actions.

Answer with ONE JSON object and nothing else:
{
  "newTodos": [{"title": string, "description": string, "category": string, "priority": "low"|"medium"|"high", "suggestedDeadline": "YYYY-MM-DD" or null, "sourceText": string, "confidence": number}],
  "todoUpdates": [{"todoId": string, "todoTitle": string, "updateType": "note"|"status_change"|"deadline_update"|"category_change", "content": string, "sourceText": string, "confidence": number}],
  "completedTodos": [{"todoId": string, "todoTitle": string, "completionReason": string, "sourceText": string, "confidence": number}],
  "confidence": number,
  "analysisType": "new_message"|"reply"|"ongoing_conversation"
}

Rules:
- sourceText MUST be copied character for character from the vendor message.
- todoUpdates and completedTodos may only reference ids from the existing todo list.
- Confidence values are between 0 and 1.
- Use empty arrays when nothing applies.`

// buildPrompt renders the request contract as the user turn.
func buildPrompt(req ServiceRequest, history []string) (string, error) {
	payload, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return "", fmt.Errorf("primary: failed to marshal prompt payload: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("Analysis request:\n")
	sb.Write(payload)
	if len(history) > 0 {
		sb.WriteString("\n\nEarlier messages in this conversation (oldest first):\n")
		for _, h := range history {
			sb.WriteString("- ")
			sb.WriteString(h)
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}
