package catalog

var schwaTable = []Schwa{
	{IPA: "ə"},
	{IPA: "ɚ", RColoured: true},
	{IPA: "ɝ", RColoured: true},
	{IPA: "ɹ̩", RColoured: true},
}
