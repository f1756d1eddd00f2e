package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// BackgroundName is the single shared background texture.
const BackgroundName = "deep-sea"

// Panel images and the background may be plain PNGs or .tex containers.
var extensions = []string{".png", ".tex"}

// ResolvePanel maps a 1-based pool index to the panel image file under
// root, preferring panels/ over the root itself.
func ResolvePanel(root string, index int) (string, error) {
	return resolve(root, []string{"panels", "."}, fmt.Sprintf("prophecy-%d", index))
}

// ResolveBackground locates the shared background texture under root.
func ResolveBackground(root string) (string, error) {
	return resolve(root, []string{"textures", "."}, BackgroundName)
}

func resolve(root string, dirs []string, name string) (string, error) {
	for _, dir := range dirs {
		for _, ext := range extensions {
			p := filepath.Join(root, dir, name+ext)
			if _, err := os.Stat(p); err == nil {
				return p, nil
			}
		}
	}
	return "", fmt.Errorf("assets: %s not found under %s", name, root)
}
