package stopwords

// defaultSet is the built-in list: high-frequency Arabic function words
// (prepositions, pronouns, demonstratives, relatives, particles, and the
// common auxiliaries). It never mutates after load.
var defaultSet = func() map[string]struct{} {
	words := []string{
		// Prepositions and particles
		"من", "في", "على", "إلى", "الى", "عن", "مع", "حتى",
		"منذ", "عند", "عندما", "لدى", "بين", "دون", "بدون",
		"حول", "ضد", "نحو", "خلال", "عبر", "فوق", "تحت",
		"أمام", "خلف", "بعد", "قبل",
		// Pronouns
		"أنا", "انا", "نحن", "أنت", "أنتم", "أنتما", "أنتن",
		"هو", "هي", "هم", "هن", "هما",
		// Demonstratives
		"هذا", "هذه", "هذان", "هاتان", "ذلك", "تلك", "أولئك",
		"هؤلاء", "هنا", "هناك", "هنالك",
		// Relatives
		"الذي", "التي", "الذين", "اللذان", "اللتان", "اللواتي",
		"اللاتي", "ما", "مما",
		// Interrogatives
		"ماذا", "لماذا", "متى", "أين", "كيف", "كم", "هل", "أي",
		"مين",
		// Negation and future
		"لا", "لم", "لن", "ليس", "ليست", "غير", "سوف",
		// Conjunctions and connectors
		"و", "أو", "او", "ثم", "بل", "لكن", "لكنه", "لأن",
		"كي", "لكي", "إذا", "اذا", "إذ", "لو", "لولا", "كما",
		"حيث", "بينما", "إلا", "الا", "أما", "إما",
		// Kana and sisters, inna and sisters
		"كان", "كانت", "كانوا", "يكون", "تكون", "أصبح", "صار",
		"إن", "ان", "أن", "كأن", "لعل", "ليت",
		// Common adverbs and fillers
		"قد", "لقد", "فقط", "أيضا", "ايضا", "جدا", "كل", "كلا",
		"بعض", "مثل", "أكثر", "اكثر", "اي", "كذلك", "الآن",
		"نفس", "سوى", "أصلا", "طبعا", "معا", "جميع",
		// Possession and existence
		"له", "لها", "لهم", "لي", "لك", "لنا", "به", "بها",
		"بهم", "بي", "بك", "بنا", "فيه", "فيها", "فيهم",
		"منه", "منها", "منهم", "مني", "منك", "منا",
		"عليه", "عليها", "عليهم", "علي", "عليك", "علينا",
		"إليه", "إليها", "إليهم", "إلي", "إليك", "إلينا",
	}

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}()
