package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

// IrisShader shades everything outside a circle. Nil until LoadShaders
// succeeds; the death wipe is skipped without it.
var IrisShader *ebiten.Shader

// LoadShaders compiles the embedded shaders once.
func LoadShaders() error {
	if IrisShader != nil {
		return nil
	}
	s, err := compileShader("shaders/iris.kage")
	if err != nil {
		return err
	}
	IrisShader = s
	return nil
}

func compileShader(path string) (*ebiten.Shader, error) {
	src, err := shaderFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	return s, nil
}
