// Package prompts offers writing prompts that help fill scrapbook pages.
package prompts

// General is the category used when an unknown one is requested.
const General = "general"

var categories = []string{General, "travel", "family", "friendship"}

var catalog = map[string][]string{
	General: {
		"Ceritakan tentang hari yang paling berkesan minggu ini",
		"Apa yang membuat Anda tersenyum hari ini?",
		"Siapa orang yang paling berarti dalam hidup Anda?",
		"Tempat favorit yang ingin Anda kunjungi lagi",
		"Makanan yang mengingatkan Anda pada masa kecil",
	},
	"travel": {
		"Destinasi impian yang ingin Anda kunjungi",
		"Pengalaman perjalanan paling berkesan",
		"Makanan lokal terenak yang pernah dicoba",
		"Pemandangan terindah yang pernah dilihat",
		"Orang menarik yang ditemui saat traveling",
	},
	"family": {
		"Tradisi keluarga yang paling Anda sukai",
		"Cerita lucu tentang anggota keluarga",
		"Momen kebersamaan yang tak terlupakan",
		"Pelajaran hidup dari orang tua",
		"Kenangan masa kecil bersama saudara",
	},
	"friendship": {
		"Sahabat pertama yang masih diingat",
		"Petualangan seru bersama teman",
		"Momen tertawa paling keras bersama",
		"Teman yang selalu ada saat dibutuhkan",
		"Kenangan sekolah yang tak terlupakan",
	},
}

// For returns a copy of the prompts for category, or the general prompts if
// the category is unknown.
func For(category string) []string {
	list, ok := catalog[category]
	if !ok {
		list = catalog[General]
	}
	return append([]string(nil), list...)
}

// Categories lists the known prompt categories.
func Categories() []string {
	return append([]string(nil), categories...)
}
