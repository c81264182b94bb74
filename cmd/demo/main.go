package main

import (
	"fmt"
	"log"

	"github.com/hubastard/glim/engine/app"
	"github.com/hubastard/glim/engine/colors"
	"github.com/hubastard/glim/engine/gui"
)

type state struct {
	clicks     int
	checked    bool
	wireframe  bool
	fruit      int
	volume     float32
	brightness float32
	speed      float32
}

func main() {
	s := state{volume: 0.5, brightness: 75, speed: 1}
	fruits := []string{"Apple", "Banana", "Cherry"}

	cfg := app.Config{
		Title:      "glim demo",
		Width:      480,
		Height:     640,
		VSync:      true,
		ClearColor: colors.DarkGray,
		FontPath:   "assets/fonts/RobotoMono.ttf",
		FontSize:   16,
	}

	err := app.Run(cfg, func(r *gui.Region) {
		r.Add(gui.NewLabel("Widget gallery").TextStyle(gui.StyleHeading))
		r.Add(gui.NewSeparator())

		if r.Add(gui.NewButton("Click me")).Clicked() {
			s.clicks++
		}
		r.Add(gui.NewLabel(fmt.Sprintf("Clicked %d times", s.clicks)))

		r.Add(gui.NewCheckbox(&s.checked, "Enable thing"))
		r.Add(gui.NewCheckbox(&s.wireframe, "Wireframe"))

		r.Add(gui.NewSeparator())
		for i, name := range fruits {
			if r.Add(gui.NewRadioButton(s.fruit == i, name)).Clicked() {
				s.fruit = i
			}
		}

		r.Add(gui.NewSeparator())
		r.Add(gui.NewSlider(&s.volume, 0, 1).Text("volume"))
		r.Add(gui.NewSlider(&s.brightness, 0, 100).Text("brightness"))
		r.Add(gui.NewSlider(&s.speed, 0.1, 10).Text("speed").TextOnTop(true))
	})
	if err != nil {
		log.Fatal(err)
	}
}
