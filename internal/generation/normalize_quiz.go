package generation

// NormalizeQuizQuestions maps an extracted payload into quiz questions.
//
// The answer index is accepted under either field-name casing the model is
// known to emit (correctAnswer / correct_answer) and must be an integer
// within [0, len(options)). Items with fewer than two options or an
// out-of-range answer are dropped, not defaulted.
func NormalizeQuizQuestions(payload any) ([]QuizQuestion, error) {
	const op = "generation.NormalizeQuizQuestions"

	items, ok := asArray(payload)
	if !ok {
		return nil, NewError(CodeValidation, op, "expected an array of quiz questions", nil)
	}
	out := quizItemsFromAny(items)
	if len(out) == 0 {
		return nil, NewError(CodeValidation, op, "no valid quiz questions in payload", nil)
	}
	return out, nil
}

func quizItemsFromAny(items []any) []QuizQuestion {
	out := make([]QuizQuestion, 0, len(items))
	for _, it := range items {
		m, ok := asObject(it)
		if !ok {
			continue
		}
		question := firstString(m, "question")
		if question == "" {
			continue
		}
		options := toStringSlice(m["options"])
		if len(options) < 2 {
			continue
		}
		rawAnswer, ok := firstField(m, "correctAnswer", "correct_answer")
		if !ok {
			continue
		}
		answer, ok := intValue(rawAnswer)
		if !ok || answer < 0 || answer >= len(options) {
			continue
		}
		out = append(out, QuizQuestion{
			Question:      question,
			Options:       options,
			CorrectAnswer: answer,
			Explanation:   firstString(m, "explanation"),
		})
	}
	return out
}
