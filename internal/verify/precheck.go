package verify

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jinsol-dev/contexthunt/internal/scoring"
)

const (
	nonsenseFeedback = "의미 있는 문장으로 다시 입력해 주세요."
	copyFeedback     = "문제 문장을 그대로 옮겨 적으면 정답으로 인정되지 않아요. 자신의 말로 바꿔 써 보세요."
	bypassFeedback   = "정답입니다! 모범 답안과 거의 같은 뜻이에요."
	failureFeedback  = "채점 중 문제가 발생했어요. 잠시 후 다시 시도해 주세요."
)

// isNonsense rejects answers too short or too empty of letters to grade:
// fewer than two runes after trimming, or nothing but punctuation and
// symbols. These never reach a scoring backend.
func isNonsense(answer string) bool {
	trimmed := strings.TrimSpace(answer)
	if utf8.RuneCountInString(trimmed) < 2 {
		return true
	}
	for _, r := range trimmed {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// matchesModelAnswer reports whether the answer is, up to spacing and case,
// the stored model meaning itself. Such answers pass without a scoring call.
func matchesModelAnswer(answer, modelMeaning string) bool {
	return scoring.SequenceRatio(scoring.Normalize(answer), scoring.Normalize(modelMeaning)) >= bypassRatio
}

// isCopyOfPuzzle reports whether the answer just parrots the puzzle sentence
// instead of paraphrasing it.
func isCopyOfPuzzle(answer, encoded string) bool {
	return scoring.SequenceRatio(scoring.Normalize(answer), scoring.Normalize(encoded)) >= copyRatio
}
