package fs

// Fixed names of the source directory layout.
const (
	BasketsDir     = "baskets"
	TagEmblemsDir  = "tag-emblems"
	BackgroundsDir = "backgrounds"
	IconsDir       = "basket-icons"

	TreeFile       = "baskets.xml"
	TagsFile       = "tags.xml"
	PropertiesFile = ".basket"

	// FolderTokenPrefix starts every generated basket folder name.
	FolderTokenPrefix = "basket-"
)

// scaffoldDirs are created, in order, before anything is written.
var scaffoldDirs = []string{BasketsDir, TagEmblemsDir, BackgroundsDir, IconsDir}
