package motest

// DutchPluralForms is the Plural-Forms value used by the Dutch fixtures.
const DutchPluralForms = "nplurals=2; plural=(n != 1);"

// Messages returns the "messages" fixture: a Dutch catalog with plain, plural and
// context entries.
func Messages() []byte {
	return New().
		Headers(DutchPluralForms, "UTF-8").
		Add("Hello", "Hallo").
		Add("Hello {user}", "Hallo {user}").
		AddPlural("Hello one person", "Hello %d people", "Hallo een persoon", "Hallo %d personen").
		AddContext("menu", "Open", "Openen").
		AddContext("state", "Open", "Geopend").
		AddContext("", "Open", "Leeg").
		AddPluralContext("cart", "%d item", "%d items", "%d artikel", "%d artikelen").
		Bytes()
}

// Greetings returns the "greetings" fixture.
func Greetings() []byte {
	return New().
		Headers(DutchPluralForms, "UTF-8").
		Add("Hello", "Yolo").
		AddPlural("Hello one", "Hello %d", "Yolo een", "Yolo %d").
		Bytes()
}

// Polish returns a three-form catalog used to check that each domain keeps its own rule.
func Polish() []byte {
	return New().
		Headers("nplurals=3; plural=(n==1 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2);", "UTF-8").
		Add("Hello", "Cześć").
		AddPlural("%d file", "%d files", "%d plik", "%d pliki", "%d plików").
		Bytes()
}
