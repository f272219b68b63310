package trapfetch

// Built-in source lists for the camera-trap rodent corpus. Changing the
// corpus means editing these lists; there is deliberately no external
// configuration for them.

// DefaultVideoURLs are pages with embedded camera-trap footage. Hosts vary
// (YouTube, MSN); the extractor resolves whatever player the page embeds.
// Newsflare pages usually require a licence purchase, so they are left out.
var DefaultVideoURLs = []string{
	"https://www.youtube.com/watch?v=CIc-Eeh7IUY",
	"https://www.youtube.com/watch?v=MFMHu1YEYQo",
	"https://www.msn.com/en-us/video/animals/hidden-camera-captures-a-tiny-mouse-collecting-food/vi-AA1Sv1nx",
	"https://www.youtube.com/watch?v=NfX6bm9x1i4",
	"https://www.youtube.com/watch?v=pGJbyh7oE2U",
	"https://www.youtube.com/watch?v=cP-___7Pva4",
	"https://www.youtube.com/watch?v=yqfF9e9PHj4",
	"https://www.youtube.com/watch?v=n3gfYT5Bw_g",
	"https://www.youtube.com/watch?v=wHWCjBzk6zc",
	"https://www.youtube.com/watch?v=Rs0KxwonI7k",
}

// DefaultDatasetURLs are direct archive links on Zenodo and CaltechDATA.
// These run to several gigabytes each.
var DefaultDatasetURLs = []string{
	"https://zenodo.org/record/3636136/files/RGB_D_Rat_Behavioral_Dataset_AnnotatedSection.zip?download=1",
	"https://zenodo.org/record/3636136/files/RGB_D_Rat_Behavioral_Dataset_NonannotatedSection.zip?download=1",
	"https://zenodo.org/record/15112879/files/Dataset_128_16x9x10K_Color.zip?download=1",
	"https://data.caltech.edu/records/4emt5-b0t10/files/CRIM13_res.zip?download=1",
	"https://data.caltech.edu/records/4emt5-b0t10/files/CRIM13_test1.zip?download=1",
	"https://data.caltech.edu/records/4emt5-b0t10/files/CRIM13_test2.zip?download=1",
	"https://data.caltech.edu/records/4emt5-b0t10/files/CRIM13_train1.zip?download=1",
	"https://data.caltech.edu/records/4emt5-b0t10/files/CRIM13_train2.zip?download=1",
	"https://data.caltech.edu/records/4emt5-b0t10/files/CRIM13_validation.zip?download=1",
}
