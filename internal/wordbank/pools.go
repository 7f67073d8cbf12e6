package wordbank

// Curated per-category pools of hard Korean vocabulary. Loaded once at
// package init and never mutated; Bank hands out copies only.
//
// Glosses are plain-language hints fed to the generation prompt, not shown
// to learners directly.

// Category names used across the engine. Unknown categories resolve to the
// general pool (see Bank.resolve).
const (
	CategoryPolitics = "Politics"
	CategoryEconomy  = "Economy"
	CategorySociety  = "Society"
	CategoryCulture  = "Culture"
	CategoryScience  = "Science"
)

var pools = map[string][]Term{
	CategoryPolitics: {
		{Word: "교착 상태", Gloss: "서로 양보하지 않아 일이 꼼짝 못하고 멈춘 상태"},
		{Word: "초당적", Gloss: "정당의 이해관계를 넘어서 함께하는 것"},
		{Word: "레임덕", Gloss: "임기 말에 권력과 영향력이 약해지는 현상"},
		{Word: "필리버스터", Gloss: "합법적인 수단으로 의사 진행을 지연시키는 행위"},
		{Word: "당리당략", Gloss: "자기 정당의 이익만을 위한 계산과 술수"},
		{Word: "거국내각", Gloss: "여러 정파가 함께 참여하여 구성한 내각"},
		{Word: "탄핵 소추", Gloss: "고위 공직자의 파면을 국회가 공식으로 요구하는 절차"},
		{Word: "공청회", Gloss: "정책을 정하기 전에 여러 사람의 의견을 공개적으로 듣는 모임"},
		{Word: "비준", Gloss: "조약을 국가가 최종적으로 승인하는 일"},
		{Word: "중우정치", Gloss: "어리석은 다수가 이끄는 잘못된 정치"},
	},
	CategoryEconomy: {
		{Word: "양적 완화", Gloss: "중앙은행이 돈을 풀어 경기를 떠받치는 정책"},
		{Word: "긴축 재정", Gloss: "정부가 씀씀이를 크게 줄이는 살림"},
		{Word: "기저 효과", Gloss: "비교 시점이 낮거나 높아 지표가 실제보다 부풀거나 줄어 보이는 현상"},
		{Word: "모라토리엄", Gloss: "빚 갚기를 한동안 미루겠다고 선언하는 것"},
		{Word: "평가 절하", Gloss: "자국 화폐의 가치를 의도적으로 낮추는 일"},
		{Word: "담합", Gloss: "업체들이 몰래 짜고 가격이나 물량을 정하는 일"},
		{Word: "출구 전략", Gloss: "풀었던 돈과 지원을 부작용 없이 거두어들이는 방법"},
		{Word: "경상 수지", Gloss: "나라가 외국과 주고받은 돈의 차이"},
		{Word: "골디락스", Gloss: "뜨겁지도 차갑지도 않은 딱 좋은 경제 상태"},
		{Word: "체감 경기", Gloss: "사람들이 피부로 느끼는 실제 경기"},
	},
	CategorySociety: {
		{Word: "젠트리피케이션", Gloss: "동네가 뜨면서 원래 살던 사람들이 밀려나는 현상"},
		{Word: "양극화", Gloss: "잘사는 쪽과 못사는 쪽의 차이가 점점 벌어지는 것"},
		{Word: "고령화", Gloss: "사회에서 노인 인구의 비율이 높아지는 것"},
		{Word: "님비 현상", Gloss: "필요하지만 싫은 시설이 우리 동네에 오는 것을 반대하는 태도"},
		{Word: "공동화", Gloss: "도심이나 지역이 텅 비어 가는 현상"},
		{Word: "사각지대", Gloss: "제도나 보호의 손길이 닿지 않는 영역"},
		{Word: "공론화", Gloss: "문제를 여러 사람이 논의하는 장으로 끌어내는 일"},
		{Word: "풍비박산", Gloss: "사방으로 날아 흩어지듯 완전히 무너짐"},
		{Word: "유야무야", Gloss: "흐지부지되어 있는 둥 마는 둥 됨"},
		{Word: "미봉책", Gloss: "근본 해결 없이 임시로 꿰매 둔 대책"},
	},
	CategoryCulture: {
		{Word: "오마주", Gloss: "존경하는 작품을 본떠서 경의를 표현하는 것"},
		{Word: "클리셰", Gloss: "너무 자주 쓰여 뻔해진 표현이나 장면"},
		{Word: "아방가르드", Gloss: "기존 형식을 깨는 앞서 나간 예술 경향"},
		{Word: "페르소나", Gloss: "감독이나 작가의 분신처럼 등장하는 인물"},
		{Word: "메타포", Gloss: "다른 것에 빗대어 뜻을 전하는 은유"},
		{Word: "고증", Gloss: "옛 문헌과 자료로 사실을 따져 밝히는 일"},
		{Word: "각색", Gloss: "원작을 다른 형식의 작품으로 고쳐 쓰는 일"},
		{Word: "서사", Gloss: "사건이 이어지는 이야기의 흐름"},
		{Word: "콜라주", Gloss: "여러 조각을 붙여 하나의 작품으로 만드는 기법"},
		{Word: "백미", Gloss: "여럿 가운데 가장 뛰어난 부분"},
	},
	CategoryScience: {
		{Word: "임계점", Gloss: "상태가 갑자기 바뀌기 시작하는 경계"},
		{Word: "촉매", Gloss: "자신은 변하지 않으면서 반응을 빠르게 하는 물질"},
		{Word: "항상성", Gloss: "몸이 안의 상태를 일정하게 지키려는 성질"},
		{Word: "역치", Gloss: "반응을 일으키는 데 필요한 최소한의 자극 크기"},
		{Word: "변인", Gloss: "실험 결과에 영향을 주는 조건"},
		{Word: "상전이", Gloss: "물질이 고체·액체·기체 사이에서 상태를 바꾸는 일"},
		{Word: "관성", Gloss: "물체가 하던 운동을 계속하려는 성질"},
		{Word: "발현", Gloss: "숨어 있던 성질이 겉으로 드러남"},
		{Word: "가설", Gloss: "검증하기 전에 세워 보는 잠정적인 설명"},
		{Word: "포화", Gloss: "더 받아들일 수 없을 만큼 가득 찬 상태"},
	},
}

// fallbackCategories are concatenated to form the general pool used for
// unknown categories.
var fallbackCategories = []string{CategorySociety, CategoryCulture}

// Categories returns the known category names in stable order.
func Categories() []string {
	return []string{
		CategoryPolitics,
		CategoryEconomy,
		CategorySociety,
		CategoryCulture,
		CategoryScience,
	}
}
