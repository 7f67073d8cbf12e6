package store

import "context"

// seedPuzzles is a small curated proverb/idiom corpus for offline play and
// tests. Seeding is idempotent on encoded text.
var seedPuzzles = []Puzzle{
	{EncodedText: "시간은 돈과 같다.", ModelMeaning: "시간은 매우 소중하다.", Category: "General", Difficulty: 1},
	{EncodedText: "발 없는 말이 천 리 간다.", ModelMeaning: "소문은 매우 빠르게 퍼진다.", Category: "General", Difficulty: 1},
	{EncodedText: "모로 가도 서울만 가면 된다.", ModelMeaning: "과정보다 결과가 중요하다.", Category: "General", Difficulty: 1},
	{EncodedText: "두 마리 토끼를 잡으려다 다 놓친다.", ModelMeaning: "욕심을 부려 두 가지 일을 동시에 하려 하면 둘 다 실패한다.", Category: "General", Difficulty: 1},
	{EncodedText: "등잔 밑이 어둡다.", ModelMeaning: "가까운 곳의 일을 오히려 잘 모른다.", Category: "General", Difficulty: 1},
	{EncodedText: "소 잃고 외양간 고친다.", ModelMeaning: "이미 일을 그르친 뒤에 뒤늦게 수습하려 해도 소용없다.", Category: "General", Difficulty: 1},
	{EncodedText: "사공이 많으면 배가 산으로 간다.", ModelMeaning: "주장하는 사람이 너무 많으면 일이 제대로 되기 힘들다.", Category: "General", Difficulty: 2},
	{EncodedText: "고래 싸움에 새우 등 터진다.", ModelMeaning: "강한 자들끼리 싸우는 통에 약한 자가 피해를 입는다.", Category: "General", Difficulty: 2},
	{EncodedText: "우물 안 개구리.", ModelMeaning: "세상 물정을 모르고 시야가 좁은 사람.", Category: "General", Difficulty: 2},
	{EncodedText: "바늘 도둑이 소 도둑 된다.", ModelMeaning: "작은 나쁜 짓도 버릇이 되면 큰 죄를 저지르게 된다.", Category: "General", Difficulty: 2},
	{EncodedText: "노사 간의 협상이 교착 상태에 빠졌다.", SourceTerm: "교착 상태", ModelMeaning: "노사 간의 협상이 꼼짝 못하는 상태에 빠졌다.", Category: "Politics", Difficulty: 2},
	{EncodedText: "정부는 긴축 재정으로 방향을 틀었다.", SourceTerm: "긴축 재정", ModelMeaning: "정부는 씀씀이를 크게 줄이는 쪽으로 방향을 바꿨다.", Category: "Economy", Difficulty: 2},
}

// Seed inserts the built-in corpus, skipping puzzles whose encoded text is
// already present. Returns the number of puzzles inserted.
func (s *Store) Seed(ctx context.Context) (int, error) {
	repo := s.Puzzles()
	inserted := 0
	for _, p := range seedPuzzles {
		exists, err := repo.ExistsEncoded(ctx, p.EncodedText)
		if err != nil {
			return inserted, err
		}
		if exists {
			continue
		}
		puzzle := p
		if err := repo.Create(ctx, &puzzle); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
