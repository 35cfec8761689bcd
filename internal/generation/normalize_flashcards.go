package generation

// NormalizeFlashcards maps an extracted payload into flashcards. Entries
// missing either text field are dropped; an empty survivor set is a
// validation failure, never an empty success.
func NormalizeFlashcards(payload any) ([]Flashcard, error) {
	const op = "generation.NormalizeFlashcards"

	items, ok := asArray(payload)
	if !ok {
		return nil, NewError(CodeValidation, op, "expected an array of flashcards", nil)
	}
	out := flashcardsFromAny(items)
	if len(out) == 0 {
		return nil, NewError(CodeValidation, op, "no valid flashcards in payload", nil)
	}
	return out, nil
}

func flashcardsFromAny(items []any) []Flashcard {
	out := make([]Flashcard, 0, len(items))
	for _, it := range items {
		m, ok := asObject(it)
		if !ok {
			continue
		}
		card := Flashcard{
			Question: firstString(m, "question"),
			Answer:   firstString(m, "answer"),
		}
		if card.Question == "" || card.Answer == "" {
			continue
		}
		out = append(out, card)
	}
	return out
}
