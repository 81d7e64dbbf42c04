package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/golangdaddy/autorennen/pkg/texture"
)

// texturegen dumps the procedurally generated game textures to PNG files
// so they can be inspected outside the game.
func main() {
	seed := flag.Int64("seed", 42, "world seed to render textures for")
	outDir := flag.String("out", "textures", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Printf("Error creating directory: %v\n", err)
		return
	}

	images := map[string]*image.RGBA{
		"ground": texture.RenderGround(*seed),
		"wall":   texture.RenderWall(*seed),
		"coin":   texture.RenderCoin(*seed),
	}
	for i, body := range texture.CarPalette {
		images[fmt.Sprintf("car%d", i)] = texture.RenderCar(body, *seed+int64(i))
	}

	for name, img := range images {
		filename := filepath.Join(*outDir, name+".png")
		if err := savePNG(img, filename); err != nil {
			fmt.Printf("Error saving %s: %v\n", filename, err)
			continue
		}
		fmt.Printf("Generated texture: %s\n", filename)
	}

	fmt.Println("Texture generation complete!")
}

func savePNG(img image.Image, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
