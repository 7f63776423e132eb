package diff

import (
	"os"

	"github.com/sdejongh/hashdiff/pkg/models"
)

// Classify inspects the two input paths and decides which comparison
// strategy applies. A path that does not exist, or that is neither a
// regular file nor a directory, classifies the pair as a mismatch; no
// existence check happens beyond reading the path's metadata.
func Classify(path1, path2 string) models.PathKind {
	info1, err1 := os.Stat(path1)
	info2, err2 := os.Stat(path2)

	if err1 != nil || err2 != nil {
		return models.KindMismatch
	}

	if info1.Mode().IsRegular() && info2.Mode().IsRegular() {
		return models.KindFiles
	}

	if info1.IsDir() && info2.IsDir() {
		return models.KindDirs
	}

	return models.KindMismatch
}
