package generation

import "strings"

// NormalizeSummary maps an extracted payload into the summary shape. The
// summary text is mandatory; key points default to an empty list.
func NormalizeSummary(payload any) (*Summary, error) {
	const op = "generation.NormalizeSummary"

	m, ok := asObject(payload)
	if !ok {
		return nil, NewError(CodeValidation, op, "expected a summary object", nil)
	}
	out := &Summary{
		Summary:   firstString(m, "summary"),
		KeyPoints: toStringSlice(m["keyPoints"]),
	}
	if out.Summary == "" {
		return nil, NewError(CodeValidation, op, "summary text missing from payload", nil)
	}
	return out, nil
}

// NormalizeChatReply trims the raw completion text. Chat replies are plain
// prose, not structured payloads; the only failure is an empty reply.
func NormalizeChatReply(raw string) (string, error) {
	const op = "generation.NormalizeChatReply"

	reply := strings.TrimSpace(raw)
	if reply == "" {
		return "", NewError(CodeValidation, op, "empty reply from completion service", nil)
	}
	return reply, nil
}
