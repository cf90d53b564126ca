package dialects

// Keyword tables. Each dialect carries a set of words distinctive enough
// to mark a text; everyday vocabulary shared across the Arab world is
// deliberately absent.

type dialect struct {
	key    string
	nameAr string
	nameEn string
	words  map[string]struct{}
}

// registry fixes the dialect order for List and for tie-breaking.
var registry = []dialect{
	{
		key:    "msa",
		nameAr: "الفصحى",
		nameEn: "Modern Standard Arabic",
		words: wordSet(
			"الذي", "التي", "الذين", "اللذان", "اللتان",
			"هؤلاء", "ذلك", "تلك", "حيث", "إذ", "لكن",
			"بيد", "غير", "سوف", "لن", "لم", "ليس",
			"كان", "أصبح", "أضحى", "ظل", "بات", "صار",
			"إن", "أن", "كأن", "لعل", "ليت", "لكنّ",
			"يجب", "ينبغي", "يتعين", "يتوجب", "بالتالي",
			"فضلاً", "علاوة", "نظراً", "وفقاً", "استناداً",
			"يُعد", "يُعتبر", "يتضمن", "يشمل", "يستلزم",
			"المذكور", "المشار", "السالف", "الآنف",
		),
	},
	{
		key:    "egyptian",
		nameAr: "المصرية",
		nameEn: "Egyptian",
		words: wordSet(
			"ده", "دي", "دول", "كده", "ازاي", "ليه", "فين",
			"عايز", "عايزة", "مش", "بتاع", "بتاعت", "بتاعي",
			"حاجة", "حاجات", "كتير", "اوي", "خالص", "بس",
			"يعني", "طب", "ماشي", "تمام", "حلو", "بقى",
			"عشان", "علشان", "دلوقتي", "امبارح", "بكره",
			"ايوه", "لأ", "اهو", "اهي", "اهم",
			"ايه", "مين", "امتى", "فاكر", "فاكرة",
			"هنا", "هناك", "عندي", "عندك",
			"بيقول", "بتقول", "بنقول", "هيروح", "هتيجي",
			"نفسي", "بأه", "والنبي", "يلا", "خلاص",
		),
	},
	{
		key:    "gulf",
		nameAr: "الخليجية",
		nameEn: "Gulf",
		words: wordSet(
			"وش", "ايش", "شلون", "ليش", "وين", "متى",
			"ابي", "ابغى", "يبي", "يبغى", "أبا",
			"حق", "حقي", "حقك", "مال", "مالي",
			"يالله", "هالحين", "الحين", "توه", "توها",
			"زين", "حيل", "وايد", "مرة", "هب",
			"جذي", "كذا", "هيك", "اي", "لا",
			"يمكن", "خلاص", "مادري", "ادري", "تدري",
			"اكو", "ماكو", "شفيك", "شفيها", "شسم",
			"يعل", "طال", "عساك", "عساه",
			"بعد", "عيل", "هالشكل",
		),
	},
	{
		key:    "levantine",
		nameAr: "الشامية",
		nameEn: "Levantine",
		words: wordSet(
			"شو", "كيف", "وين", "ليش", "مين", "قديش",
			"هلق", "هلأ", "هلا", "لسا", "بعدين",
			"بدي", "بدك", "بدو", "بدها", "بدنا",
			"هيك", "هيدا", "هيدي", "هودي", "هوني",
			"كتير", "يعني", "طيب",
			"منيح", "حلو", "زاكي", "مليح",
			"شب", "صبية", "ختيارة", "زلمة",
			"عنجد", "والله", "يلعن",
			"بكير", "هاللحظة", "اليوم", "بكرا",
			"خليني", "عطيني", "وريني", "قلي",
		),
	},
	{
		key:    "maghrebi",
		nameAr: "المغاربية",
		nameEn: "Maghrebi",
		words: wordSet(
			"واش", "علاش", "فاش", "كيفاش", "فين", "شحال",
			"بغيت", "بغا", "بغات", "نبغي", "تبغي",
			"ديال", "ديالي", "ديالك", "ديالو", "ديالها",
			"هاد", "هادي", "هادو", "داك", "ديك",
			"بزاف", "شوية", "مزيان", "واعر", "خايب",
			"زعما", "بصح", "والو", "حتى",
			"كيدير", "كيديري", "كنقول", "كنمشي",
			"دابا", "دروك", "غدا", "البارح",
			"لابأس", "يسهل", "ساهل", "ماشي",
			"خويا", "ختي", "صاحبي", "لمرا", "راجل",
		),
	},
	{
		key:    "iraqi",
		nameAr: "العراقية",
		nameEn: "Iraqi",
		words: wordSet(
			"شلونك", "شكو", "ماكو", "شنو", "لويش",
			"اريد", "يريد", "تريد", "نريد",
			"هسه", "هسع", "هسة",
			"اكو",
			"زين", "حيل", "هواية", "كلش",
			"جا", "راح", "يمعود", "ابوي", "يمه",
			"چان", "چا", "گال", "يگول",
			"خوش", "باشا", "اوادم",
			"بالله", "والله", "لا", "اي",
		),
	},
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
