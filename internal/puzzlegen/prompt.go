package puzzlegen

import (
	"fmt"
	"strings"

	"github.com/jinsol-dev/contexthunt/internal/wordbank"
)

// Prompt builders are pure: they render structured-text requests and never
// touch the network. The generator owns the calls.

const generationSystemPrompt = `당신은 한국어 어휘 교육 전문가이자 창의적인 작가입니다. 학습자가 문맥으로 어려운 단어의 뜻을 유추하게 만드는 문제를 만듭니다.

규칙:
- 출력은 반드시 JSON 객체 하나뿐입니다. 마크다운 코드 블록, 백틱, 설명 문장을 붙이지 마세요.
- 모든 텍스트는 한국어만 사용합니다. 한자, 일본어 문자, 로마자 설명을 섞지 마세요.
- encoded_sentence는 주어진 목표 단어를 자연스럽게 포함한, 그 자체로 완결된 한 문장이어야 합니다. 앞뒤 맥락 없이 읽혀야 합니다.
- original_meaning은 encoded_sentence와 같은 내용을 쉬운 일상어로 풀어 쓴 문장입니다. 목표 단어만 쉬운 표현으로 바꾸고 나머지 의미는 유지하세요.
- target_word에는 목표 단어만 적습니다. 조사나 다른 단어를 붙이지 마세요.
- word_definition은 목표 단어의 뜻을 한 줄로 적습니다.
- 최근에 낸 단어 목록에 있는 단어로는 문제를 만들지 마세요.`

const reviewSystemPrompt = `당신은 엄격한 한국어 교열 편집자입니다. 주어진 어휘 문제 초안을 점검 목록에 따라 검토하고, 고친 결과를 같은 JSON 형태로 출력합니다. 문제가 없으면 초안을 그대로 돌려보냅니다. JSON 객체 하나만 출력하세요.`

// buildGenerationMessage renders the drafting request body.
func buildGenerationMessage(term wordbank.Term, input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "분류: %s\n", input.Category)
	fmt.Fprintf(&b, "난이도: %d (1 쉬움 ~ 5 어려움)\n", input.Difficulty)
	fmt.Fprintf(&b, "목표 단어: %s\n", term.Word)
	fmt.Fprintf(&b, "단어 풀이: %s\n", term.Gloss)

	b.WriteString("\n최근에 낸 단어 (다시 내지 말 것):\n")
	if len(input.RecentTerms) == 0 {
		b.WriteString("없음\n")
	} else {
		for _, t := range input.RecentTerms {
			fmt.Fprintf(&b, "- %s\n", t)
		}
	}

	b.WriteString(`
예시 출력:
{"encoded_sentence": "노사 간의 협상이 교착 상태에 빠졌다.", "original_meaning": "노사 간의 협상이 꼼짝 못하는 상태에 빠졌다.", "difficulty_level": 2, "category": "Politics", "target_word": "교착 상태", "word_definition": "서로 맞서서 일이 더 나아가지 못하고 멈춘 상태"}

위 형식과 규칙에 맞춰, 목표 단어로 새 문제 JSON을 하나 만드세요.`)

	return b.String()
}

// buildReviewMessage renders the self-correction request: the sanitized
// draft plus the editor checklist.
func buildReviewMessage(d *Draft) string {
	var b strings.Builder

	b.WriteString("점검할 초안:\n")
	fmt.Fprintf(&b, `{"encoded_sentence": %q, "original_meaning": %q, "difficulty_level": %d, "category": %q, "target_word": %q, "word_definition": %q}`,
		d.EncodedSentence, d.OriginalMeaning, d.Difficulty, d.Category, d.SourceTerm, d.WordDefinition)

	b.WriteString(`

점검 목록:
1. encoded_sentence가 문법적으로 자연스러운 한국어 문장인가?
2. 한자, 일본어 문자, 깨진 글자가 섞여 있지 않은가?
3. 마크다운 기호(백틱, 별표 등)가 남아 있지 않은가?
4. target_word에 목표 단어만 들어 있는가? 조사나 다른 말이 붙어 있으면 단어만 남기세요.
5. original_meaning이 encoded_sentence와 같은 뜻인가? 목표 단어만 쉬운 말로 바뀌었는가?
6. encoded_sentence가 앞뒤 맥락 없이 혼자서 이해되는 문장인가?

고친 결과를 같은 JSON 형태로 출력하세요.`)

	return b.String()
}
