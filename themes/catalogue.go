package themes

// catalogue carries the presentation data for every category. The dark
// palette reuses the dark text colour as its primary so themed accents
// stay legible on dark surfaces.
var catalogue = map[Category]Theme{
	Weddings: {
		Name: "Weddings & Related Events",
		Icon: "💍",
		Light: Palette{
			Primary:    "#f4a6cd",
			Secondary:  "#fdf2f8",
			Accent:     "#ec4899",
			Background: "linear-gradient(135deg, #fdf2f8 0%, #fce7f3 50%, #fbcfe8 100%)",
			Text:       "#831843",
			Surface:    "rgba(253, 242, 248, 0.8)",
			Border:     "rgba(244, 166, 205, 0.3)",
			Shadow:     "rgba(236, 72, 153, 0.15)",
		},
		Dark: Palette{
			Primary:    "#f9a8d4",
			Secondary:  "#fdf2f8",
			Accent:     "#ec4899",
			Background: "linear-gradient(135deg, #2d1b2e 0%, #3c1f3e 50%, #4a1f4a 100%)",
			Text:       "#f9a8d4",
			Surface:    "rgba(45, 27, 46, 0.8)",
			Border:     "rgba(249, 168, 212, 0.4)",
			Shadow:     "rgba(236, 72, 153, 0.25)",
		},
		Fonts: Fonts{
			Display: `"Dancing Script", cursive`,
			Serif:   `"Playfair Display", serif`,
			Sans:    `"Poppins", sans-serif`,
		},
		Decorations: Decorations{Particles: "petals", Overlay: "sparkles", Pattern: "floral"},
		Animations:  Animations{Entrance: "fadeInUp", Hover: "gentle-float", Transition: "slide-rose"},
	},
	Family: {
		Name: "Family & Life Milestones",
		Icon: "👨‍👩‍👧‍👦",
		Light: Palette{
			Primary:    "#f59e0b",
			Secondary:  "#fef3c7",
			Accent:     "#d97706",
			Background: "linear-gradient(135deg, #fef3c7 0%, #fed7aa 50%, #fdba74 100%)",
			Text:       "#92400e",
			Surface:    "rgba(254, 243, 199, 0.8)",
			Border:     "rgba(245, 158, 11, 0.3)",
			Shadow:     "rgba(217, 119, 6, 0.15)",
		},
		Dark: Palette{
			Primary:    "#fbbf24",
			Secondary:  "#fef3c7",
			Accent:     "#d97706",
			Background: "linear-gradient(135deg, #2d2416 0%, #3c2e1a 50%, #4a3520 100%)",
			Text:       "#fbbf24",
			Surface:    "rgba(45, 36, 22, 0.8)",
			Border:     "rgba(251, 191, 36, 0.4)",
			Shadow:     "rgba(217, 119, 6, 0.25)",
		},
		Fonts: Fonts{
			Display: `"Crimson Text", serif`,
			Serif:   `"Crimson Text", serif`,
			Sans:    `"Inter", sans-serif`,
		},
		Decorations: Decorations{Particles: "memories", Overlay: "scrapbook", Pattern: "photo-frames"},
		Animations:  Animations{Entrance: "flipIn", Hover: "page-turn", Transition: "slide-warm"},
	},
	Celebrations: {
		Name: "Celebrations & Parties",
		Icon: "🎉",
		Light: Palette{
			Primary:    "#f97316",
			Secondary:  "#fed7aa",
			Accent:     "#ea580c",
			Background: "linear-gradient(135deg, #fed7aa 0%, #fdba74 50%, #fb923c 100%)",
			Text:       "#c2410c",
			Surface:    "rgba(254, 215, 170, 0.8)",
			Border:     "rgba(249, 115, 22, 0.3)",
			Shadow:     "rgba(234, 88, 12, 0.15)",
		},
		Dark: Palette{
			Primary:    "#fb923c",
			Secondary:  "#fed7aa",
			Accent:     "#ea580c",
			Background: "linear-gradient(135deg, #2d1f16 0%, #3c2a1a 50%, #4a3220 100%)",
			Text:       "#fb923c",
			Surface:    "rgba(45, 31, 22, 0.8)",
			Border:     "rgba(251, 146, 60, 0.4)",
			Shadow:     "rgba(234, 88, 12, 0.25)",
		},
		Fonts: Fonts{
			Display: `"Fredoka One", cursive`,
			Serif:   `"Playfair Display", serif`,
			Sans:    `"Poppins", sans-serif`,
		},
		Decorations: Decorations{Particles: "confetti", Overlay: "sparkles", Pattern: "party"},
		Animations:  Animations{Entrance: "bounceIn", Hover: "party-bounce", Transition: "slide-vibrant"},
	},
	Travel: {
		Name: "Travel & Adventures",
		Icon: "✈️",
		Light: Palette{
			Primary:    "#0ea5e9",
			Secondary:  "#e0f2fe",
			Accent:     "#0284c7",
			Background: "linear-gradient(135deg, #e0f2fe 0%, #bae6fd 50%, #7dd3fc 100%)",
			Text:       "#0c4a6e",
			Surface:    "rgba(224, 242, 254, 0.8)",
			Border:     "rgba(14, 165, 233, 0.3)",
			Shadow:     "rgba(2, 132, 199, 0.15)",
		},
		Dark: Palette{
			Primary:    "#7dd3fc",
			Secondary:  "#e0f2fe",
			Accent:     "#0284c7",
			Background: "linear-gradient(135deg, #1e2832 0%, #1e3a4a 50%, #1e4a5a 100%)",
			Text:       "#7dd3fc",
			Surface:    "rgba(30, 40, 50, 0.8)",
			Border:     "rgba(125, 211, 252, 0.4)",
			Shadow:     "rgba(2, 132, 199, 0.25)",
		},
		Fonts: Fonts{
			Display: `"Montserrat", sans-serif`,
			Serif:   `"Merriweather", serif`,
			Sans:    `"Open Sans", sans-serif`,
		},
		Decorations: Decorations{Particles: "clouds", Overlay: "parallax", Pattern: "maps"},
		Animations:  Animations{Entrance: "slideInFromRight", Hover: "drift", Transition: "slide-sky"},
	},
	Special: {
		Name: "Special Events & Occasions",
		Icon: "🌟",
		Light: Palette{
			Primary:    "#6366f1",
			Secondary:  "#e0e7ff",
			Accent:     "#4f46e5",
			Background: "linear-gradient(135deg, #e0e7ff 0%, #c7d2fe 50%, #a5b4fc 100%)",
			Text:       "#3730a3",
			Surface:    "rgba(224, 231, 255, 0.8)",
			Border:     "rgba(99, 102, 241, 0.3)",
			Shadow:     "rgba(79, 70, 229, 0.15)",
		},
		Dark: Palette{
			Primary:    "#a5b4fc",
			Secondary:  "#e0e7ff",
			Accent:     "#4f46e5",
			Background: "linear-gradient(135deg, #1e1b2e 0%, #2a1f3e 50%, #3a2a5a 100%)",
			Text:       "#a5b4fc",
			Surface:    "rgba(30, 27, 46, 0.8)",
			Border:     "rgba(165, 180, 252, 0.4)",
			Shadow:     "rgba(79, 70, 229, 0.25)",
		},
		Fonts: Fonts{
			Display: `"Cormorant Garamond", serif`,
			Serif:   `"Cormorant Garamond", serif`,
			Sans:    `"Inter", sans-serif`,
		},
		Decorations: Decorations{Particles: "bokeh", Overlay: "glow", Pattern: "elegant"},
		Animations:  Animations{Entrance: "fadeInScale", Hover: "elegant-lift", Transition: "slide-premium"},
	},
	Personal: {
		Name: "Personal & Creative Albums",
		Icon: "🎨",
		Light: Palette{
			Primary:    "#8b5cf6",
			Secondary:  "#f3e8ff",
			Accent:     "#7c3aed",
			Background: "linear-gradient(135deg, #f3e8ff 0%, #e9d5ff 50%, #d8b4fe 100%)",
			Text:       "#5b21b6",
			Surface:    "rgba(243, 232, 255, 0.8)",
			Border:     "rgba(139, 92, 246, 0.3)",
			Shadow:     "rgba(124, 58, 237, 0.15)",
		},
		Dark: Palette{
			Primary:    "#d8b4fe",
			Secondary:  "#f3e8ff",
			Accent:     "#7c3aed",
			Background: "linear-gradient(135deg, #2d1b3e 0%, #3c1f5a 50%, #4a2a6a 100%)",
			Text:       "#d8b4fe",
			Surface:    "rgba(45, 27, 62, 0.8)",
			Border:     "rgba(216, 180, 254, 0.4)",
			Shadow:     "rgba(124, 58, 237, 0.25)",
		},
		Fonts: Fonts{
			Display: `"Pacifico", cursive`,
			Serif:   `"Libre Baskerville", serif`,
			Sans:    `"Nunito", sans-serif`,
		},
		Decorations: Decorations{Particles: "artistic", Overlay: "brushstrokes", Pattern: "creative"},
		Animations:  Animations{Entrance: "rotateIn", Hover: "creative-bounce", Transition: "slide-artistic"},
	},
}
