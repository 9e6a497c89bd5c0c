package slidegen

// ThemeColors 主题颜色角色
type ThemeColors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Highlight  string `json:"highlight,omitempty"` // 可选，空表示未设置
}

// ThemeFonts 主题字体角色
type ThemeFonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// ThemeEffects 主题特殊视觉效果，字段为空表示未设置
type ThemeEffects struct {
	Gradient string `json:"gradient,omitempty"`
	Shadow   string `json:"shadow,omitempty"`
	Border   string `json:"border,omitempty"`
}

// Theme 幻灯片主题，静态目录，运行时不可变
type Theme struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Colors      ThemeColors   `json:"colors"`
	Fonts       ThemeFonts    `json:"fonts"`
	Effects     *ThemeEffects `json:"effects,omitempty"`
	IsDark      bool          `json:"isDark"`
}

// HighlightColor 强调色，未设置时回退到次色
func (t *Theme) HighlightColor() string {
	if t.Colors.Highlight != "" {
		return t.Colors.Highlight
	}
	return t.Colors.Secondary
}

var themes = []*Theme{
	{
		ID:          "chanel-noir",
		Name:        "Chanel Noir",
		Description: "黑白奢华风格",
		Colors: ThemeColors{
			Primary:    "#000000",
			Secondary:  "#C5A572",
			Accent:     "#FFFFFF",
			Background: "#FFFFFF",
			Text:       "#000000",
			Highlight:  "#C5A572",
		},
		Fonts: ThemeFonts{
			Heading: "Playfair Display, serif",
			Body:    "Noto Sans KR, sans-serif",
		},
		Effects: &ThemeEffects{
			Gradient: "linear-gradient(135deg, #000000 0%, #2C2C2C 100%)",
			Shadow:   "0 8px 32px rgba(0, 0, 0, 0.15)",
			Border:   "3px solid #C5A572",
		},
	},
	{
		ID:          "apple-keynote",
		Name:        "Apple Keynote",
		Description: "极简优雅风格",
		Colors: ThemeColors{
			Primary:    "#1D1D1F",
			Secondary:  "#0071E3",
			Accent:     "#06C",
			Background: "#F5F5F7",
			Text:       "#1D1D1F",
			Highlight:  "#0071E3",
		},
		Fonts: ThemeFonts{
			Heading: "SF Pro Display, -apple-system, sans-serif",
			Body:    "SF Pro Text, -apple-system, sans-serif",
		},
		Effects: &ThemeEffects{
			Gradient: "linear-gradient(180deg, #F5F5F7 0%, #FFFFFF 100%)",
			Shadow:   "0 4px 20px rgba(0, 0, 0, 0.08)",
		},
	},
	{
		ID:          "cyberpunk-neon",
		Name:        "Cyberpunk Neon",
		Description: "赛博朋克霓虹暗色主题",
		Colors: ThemeColors{
			Primary:    "#00F5FF",
			Secondary:  "#FF00FF",
			Accent:     "#FFD700",
			Background: "#0A0E27",
			Text:       "#E0E0E0",
			Highlight:  "#00F5FF",
		},
		Fonts: ThemeFonts{
			Heading: "Orbitron, monospace",
			Body:    "Rajdhani, sans-serif",
		},
		Effects: &ThemeEffects{
			Gradient: "linear-gradient(135deg, #0A0E27 0%, #1A1F3A 50%, #2A1F3D 100%)",
			Shadow:   "0 0 20px rgba(0, 245, 255, 0.5), 0 0 40px rgba(255, 0, 255, 0.3)",
			Border:   "2px solid #00F5FF",
		},
		IsDark: true,
	},
	{
		ID:          "gradient-sunset",
		Name:        "Gradient Sunset",
		Description: "温暖的日落渐变配色",
		Colors: ThemeColors{
			Primary:    "#FF6B6B",
			Secondary:  "#FFD93D",
			Accent:     "#6BCB77",
			Background: "#FFF8E1",
			Text:       "#2C3E50",
			Highlight:  "#FF6B6B",
		},
		Fonts: ThemeFonts{
			Heading: "Montserrat, sans-serif",
			Body:    "Noto Sans KR, sans-serif",
		},
		Effects: &ThemeEffects{
			Gradient: "linear-gradient(135deg, #667eea 0%, #764ba2 25%, #f093fb 50%, #f5576c 75%, #feca57 100%)",
			Shadow:   "0 10px 30px rgba(102, 126, 234, 0.3)",
		},
	},
	{
		ID:          "glassmorphism",
		Name:        "Glassmorphism",
		Description: "半透明玻璃质感",
		Colors: ThemeColors{
			Primary:    "#667eea",
			Secondary:  "#764ba2",
			Accent:     "#f093fb",
			Background: "#e0e5ec",
			Text:       "#2C3E50",
			Highlight:  "#667eea",
		},
		Fonts: ThemeFonts{
			Heading: "Poppins, sans-serif",
			Body:    "Inter, sans-serif",
		},
		Effects: &ThemeEffects{
			Gradient: "linear-gradient(135deg, rgba(255, 255, 255, 0.1), rgba(255, 255, 255, 0.05))",
			Shadow:   "0 8px 32px 0 rgba(31, 38, 135, 0.37)",
			Border:   "1px solid rgba(255, 255, 255, 0.18)",
		},
	},
	{
		ID:          "retro-vintage",
		Name:        "Retro Vintage",
		Description: "复古怀旧风格",
		Colors: ThemeColors{
			Primary:    "#D2691E",
			Secondary:  "#8B4513",
			Accent:     "#F4A460",
			Background: "#FFF8DC",
			Text:       "#3E2723",
			Highlight:  "#CD853F",
		},
		Fonts: ThemeFonts{
			Heading: "Playfair Display, serif",
			Body:    "Merriweather, serif",
		},
		Effects: &ThemeEffects{
			Gradient: "linear-gradient(135deg, #FFF8DC 0%, #FFE4B5 100%)",
			Shadow:   "4px 4px 0px #8B4513",
			Border:   "4px solid #8B4513",
		},
	},
	{
		ID:          "corporate-tech",
		Name:        "Corporate Tech",
		Description: "企业技术演示风格",
		Colors: ThemeColors{
			Primary:    "#1e3a8a",
			Secondary:  "#3b82f6",
			Accent:     "#60a5fa",
			Background: "#ffffff",
			Text:       "#1f2937",
			Highlight:  "#3b82f6",
		},
		Fonts: ThemeFonts{
			Heading: "Roboto, sans-serif",
			Body:    "Open Sans, sans-serif",
		},
		Effects: &ThemeEffects{
			Gradient: "linear-gradient(135deg, #1e3a8a 0%, #3b82f6 100%)",
			Shadow:   "0 4px 15px rgba(30, 58, 138, 0.2)",
		},
	},
	{
		ID:          "nature-earth",
		Name:        "Nature Earth",
		Description: "自然大地色系",
		Colors: ThemeColors{
			Primary:    "#2d5016",
			Secondary:  "#56ab2f",
			Accent:     "#a8e063",
			Background: "#f0f4ef",
			Text:       "#1a2e05",
			Highlight:  "#56ab2f",
		},
		Fonts: ThemeFonts{
			Heading: "Nunito, sans-serif",
			Body:    "Lato, sans-serif",
		},
		Effects: &ThemeEffects{
			Gradient: "linear-gradient(135deg, #56ab2f 0%, #a8e063 100%)",
			Shadow:   "0 6px 20px rgba(86, 171, 47, 0.25)",
		},
	},
}

// Themes 获取全部主题
func Themes() []*Theme {
	return themes
}

// GetThemeByID 根据ID查找主题，不存在返回nil
func GetThemeByID(id string) *Theme {
	for _, t := range themes {
		if t.ID == id {
			return t
		}
	}
	return nil
}
