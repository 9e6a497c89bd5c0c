package slidegen

import (
	"fmt"
	"strings"
)

// 基础布局样式，与主题无关
const baseStyles = `* {
  margin: 0;
  padding: 0;
  box-sizing: border-box;
}

body {
  font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
  overflow: hidden;
}

.presentation {
  width: 100vw;
  height: 100vh;
  position: relative;
}

.slide {
  width: 100%;
  height: 100%;
  padding: 60px 80px;
  display: none;
  flex-direction: column;
  justify-content: flex-start;
  position: absolute;
  top: 0;
  left: 0;
  overflow: hidden;
}

.slide.active {
  display: flex;
}

.slide-content {
  flex: 1;
  display: flex;
  flex-direction: column;
  justify-content: flex-start;
  overflow-y: auto;
  max-height: calc(100vh - 180px);
}

.slide-content h1 {
  font-size: 3.2rem;
  margin-bottom: 1.5rem;
  line-height: 1.2;
}

.slide-content h2 {
  font-size: 2.8rem;
  margin-bottom: 1.2rem;
  line-height: 1.3;
}

.slide-content h3 {
  font-size: 2.2rem;
  margin-bottom: 1rem;
  line-height: 1.4;
}

.slide-content p {
  font-size: 1.8rem;
  line-height: 1.8;
  margin-bottom: 1.2rem;
}

.slide-content ul, .slide-content ol {
  font-size: 1.8rem;
  line-height: 2;
  margin-left: 2.5rem;
  margin-bottom: 1.2rem;
}

.slide-content li {
  margin-bottom: 0.4rem;
}

.slide-content code {
  background: rgba(0, 0, 0, 0.05);
  padding: 2px 8px;
  border-radius: 4px;
  font-family: 'Monaco', 'Courier New', monospace;
  font-size: 1.1rem;
}

.slide-content pre {
  background: #1e1e1e;
  color: #d4d4d4;
  padding: 15px;
  border-radius: 8px;
  overflow-x: auto;
  margin-bottom: 0.8rem;
  font-size: 1rem;
}

.slide-content pre code {
  background: transparent;
  color: inherit;
  padding: 0;
}

.slide-footer {
  margin-top: 20px;
  padding-top: 15px;
  border-top: 2px solid currentColor;
  opacity: 0.5;
  flex-shrink: 0;
}

.slide-number {
  font-size: 1rem;
}

.slide-cover {
  justify-content: center;
  align-items: center;
  text-align: center;
}

.cover-title {
  font-size: 3.5rem;
  font-weight: 700;
  margin-bottom: 1.5rem;
  line-height: 1.2;
}

.cover-subtitle {
  font-size: 2rem;
  margin-bottom: 2.5rem;
  opacity: 0.8;
}

.cover-author {
  font-size: 1.5rem;
  opacity: 0.6;
}

.slide-closing {
  justify-content: center;
  align-items: center;
}

.slide-closing .slide-content {
  text-align: center;
  justify-content: center;
  align-items: center;
}

.slide-closing h1,
.slide-closing h2 {
  font-size: 4rem;
  font-weight: 700;
  margin-bottom: 2rem;
}

.slide-closing p {
  font-size: 2rem;
  opacity: 0.8;
}

.controls {
  position: fixed;
  bottom: 40px;
  right: 40px;
  display: flex;
  gap: 10px;
  z-index: 1000;
}

.control-btn {
  padding: 12px 24px;
  font-size: 1rem;
  font-weight: 500;
  cursor: pointer;
  border: 2px solid currentColor;
  background: transparent;
  transition: all 0.3s ease;
  border-radius: 4px;
}

.control-btn:hover {
  transform: translateY(-2px);
  box-shadow: 0 4px 12px rgba(0, 0, 0, 0.2);
}

.control-btn:active {
  transform: translateY(0);
}

@media print {
  .controls {
    display: none;
  }

  .slide {
    page-break-after: always;
    position: relative;
    display: flex !important;
  }
}

@media (max-height: 800px) {
  .slide {
    padding: 40px 60px;
  }

  .slide-content h1 { font-size: 2.6rem; }
  .slide-content h2 { font-size: 2.2rem; }
  .slide-content h3 { font-size: 1.8rem; }
  .slide-content p, .slide-content ul, .slide-content ol { font-size: 1.5rem; }
}`

const fontImport = `@import url('https://fonts.googleapis.com/css2?family=Playfair+Display:wght@400;700;900&family=Montserrat:wght@300;400;600;700&family=Poppins:wght@300;400;600;700&family=Orbitron:wght@400;700;900&family=Rajdhani:wght@300;400;600;700&family=Merriweather:wght@300;400;700&family=Roboto:wght@300;400;500;700&family=Nunito:wght@300;400;600;700&family=Noto+Sans+KR:wght@300;400;500;700&family=Inter:wght@300;400;500;700&family=Lato:wght@300;400;700&family=Open+Sans:wght@300;400;600;700&display=swap');`

// BuildThemeStyles 生成主题相关样式。
// 暗色主题下文本角色统一映射为亮色，不使用主题声明的文本色，
// 保证深色渐变或深色纯色背景上的可读性；
// 可选效果按字段显式存在与否分支，不做运行时属性探测
func BuildThemeStyles(theme *Theme) string {
	isDark := theme.IsDark
	highlight := theme.HighlightColor()

	// 自适应文本色选择
	textColor := theme.Colors.Text
	primaryColor := theme.Colors.Primary
	h3Color := theme.Colors.Accent
	if isDark {
		textColor = "#FFFFFF"
		primaryColor = theme.Colors.Accent
		h3Color = highlight
	}
	secondaryColor := theme.Colors.Secondary

	var gradient, shadow, border string
	if theme.Effects != nil {
		gradient = theme.Effects.Gradient
		shadow = theme.Effects.Shadow
		border = theme.Effects.Border
	}

	var b strings.Builder
	b.WriteString(fontImport)
	b.WriteString("\n\n")

	b.WriteString("body {\n")
	fmt.Fprintf(&b, "  background: %s;\n", theme.Colors.Background)
	if gradient != "" {
		fmt.Fprintf(&b, "  background-image: %s;\n", gradient)
	}
	fmt.Fprintf(&b, "  color: %s;\n", textColor)
	fmt.Fprintf(&b, "  font-family: %s;\n", theme.Fonts.Body)
	b.WriteString("}\n\n")

	b.WriteString(".slide-cover {\n")
	if gradient != "" {
		fmt.Fprintf(&b, "  background: %s !important;\n", gradient)
	} else {
		fmt.Fprintf(&b, "  background: %s !important;\n", theme.Colors.Primary)
	}
	if shadow != "" {
		fmt.Fprintf(&b, "  box-shadow: inset %s;\n", shadow)
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, ".cover-title {\n  font-family: %s !important;\n  color: %s !important;\n  text-shadow: 2px 2px 8px rgba(0, 0, 0, 0.3);\n", theme.Fonts.Heading, theme.Colors.Background)
	if border != "" {
		fmt.Fprintf(&b, "  border-bottom: %s;\n", border)
	}
	b.WriteString("  padding-bottom: 0.5rem;\n}\n\n")

	fmt.Fprintf(&b, ".cover-subtitle {\n  color: %s !important;\n  font-weight: 300;\n}\n\n", theme.Colors.Accent)
	fmt.Fprintf(&b, ".cover-author {\n  color: %s !important;\n  font-style: italic;\n}\n\n", highlight)

	fmt.Fprintf(&b, ".slide {\n  font-family: %s;\n}\n\n", theme.Fonts.Body)
	if shadow != "" {
		fmt.Fprintf(&b, ".slide-content {\n  box-shadow: %s;\n}\n\n", shadow)
	}

	fmt.Fprintf(&b, ".slide-content h1 {\n  font-family: %s;\n  color: %s;\n", theme.Fonts.Heading, primaryColor)
	if border != "" {
		fmt.Fprintf(&b, "  border-left: 8px solid %s;\n  padding-left: 1.5rem;\n", secondaryColor)
	}
	b.WriteString("  text-shadow: 1px 1px 3px rgba(0, 0, 0, 0.1);\n}\n\n")

	fmt.Fprintf(&b, ".slide-content h2 {\n  font-family: %s;\n  color: %s;\n", theme.Fonts.Heading, secondaryColor)
	if border != "" {
		fmt.Fprintf(&b, "  border-left: 6px solid %s;\n  padding-left: 1rem;\n", highlight)
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, ".slide-content h3 {\n  font-family: %s;\n  color: %s;\n", theme.Fonts.Heading, h3Color)
	if border != "" {
		fmt.Fprintf(&b, "  border-left: 4px solid %s;\n  padding-left: 0.8rem;\n", theme.Colors.Accent)
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, ".slide-content strong {\n  color: %s;\n  font-weight: 700;\n}\n\n", highlight)
	fmt.Fprintf(&b, ".slide-content em {\n  color: %s;\n  font-style: italic;\n}\n\n", secondaryColor)

	fmt.Fprintf(&b, ".slide-content ul li::marker {\n  color: %s;\n  font-weight: bold;\n}\n\n", primaryColor)
	fmt.Fprintf(&b, ".slide-content ol li::marker {\n  color: %s;\n  font-weight: bold;\n}\n\n", secondaryColor)

	if isDark {
		fmt.Fprintf(&b, ".slide-content code {\n  background: rgba(255, 255, 255, 0.1);\n  color: %s;\n  border: 1px solid rgba(255, 255, 255, 0.2);\n}\n\n", primaryColor)
		fmt.Fprintf(&b, ".slide-content pre {\n  background: rgba(0, 0, 0, 0.3);\n  border-left: 5px solid %s;\n}\n\n", highlight)
		fmt.Fprintf(&b, ".slide-content pre code {\n  color: %s;\n}\n\n", textColor)
		fmt.Fprintf(&b, ".slide-content blockquote {\n  border-left: 5px solid %s;\n  font-style: italic;\n  color: %s;\n  background: rgba(255, 255, 255, 0.05);\n  padding: 1rem 1rem 1rem 1.5rem;\n  border-radius: 0 8px 8px 0;\n}\n\n", primaryColor, secondaryColor)
	} else {
		fmt.Fprintf(&b, ".slide-content code {\n  background: %s15;\n  color: %s;\n  border: 1px solid %s30;\n}\n\n", theme.Colors.Primary, primaryColor, theme.Colors.Primary)
		fmt.Fprintf(&b, ".slide-content pre {\n  background: %s;\n  border-left: 5px solid %s;\n}\n\n", theme.Colors.Primary, highlight)
		fmt.Fprintf(&b, ".slide-content pre code {\n  color: %s;\n}\n\n", theme.Colors.Background)
		fmt.Fprintf(&b, ".slide-content blockquote {\n  border-left: 5px solid %s;\n  font-style: italic;\n  color: %s;\n  background: %s08;\n  padding: 1rem 1rem 1rem 1.5rem;\n  border-radius: 0 8px 8px 0;\n}\n\n", primaryColor, secondaryColor, theme.Colors.Primary)
	}

	fmt.Fprintf(&b, ".slide-content th {\n  background: %s;\n  color: %s;\n  font-weight: 600;\n  padding: 12px 15px;\n  text-align: left;\n}\n\n", primaryColor, theme.Colors.Background)
	if isDark {
		fmt.Fprintf(&b, ".slide-content td {\n  padding: 10px 15px;\n  border-bottom: 1px solid rgba(255, 255, 255, 0.2);\n  color: %s;\n}\n\n", textColor)
	} else {
		fmt.Fprintf(&b, ".slide-content td {\n  padding: 10px 15px;\n  border-bottom: 1px solid %s20;\n  color: %s;\n}\n\n", theme.Colors.Primary, textColor)
	}

	fmt.Fprintf(&b, ".slide-footer {\n  border-top-color: %s;\n  color: %s;\n}\n\n", theme.Colors.Primary, secondaryColor)

	fmt.Fprintf(&b, ".control-btn {\n  color: %s;\n  border-color: %s;\n  background: %s;\n  font-family: %s;\n", theme.Colors.Primary, theme.Colors.Primary, theme.Colors.Background, theme.Fonts.Body)
	if shadow != "" {
		fmt.Fprintf(&b, "  box-shadow: %s;\n", shadow)
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, ".control-btn:hover {\n  background: %s;\n  color: %s;\n  transform: translateY(-3px);\n}\n", theme.Colors.Primary, theme.Colors.Background)

	return b.String()
}
