package api

import "github.com/gofiber/fiber/v2"

var Handlers []Handler

type Handler interface {
	RegisterRoutes(router fiber.Router)
}

// PublicHandler 在应用根路径注册路由（查看页、短链等）
type PublicHandler interface {
	RegisterPublicRoutes(router fiber.Router)
}

/*
对外接口：
1、markdown生成HTML演示文稿
2、自由文本AI转换为幻灯片markdown
3、演示文稿发布到对象存储并获取分享链接
4、主题目录与发布历史查询
*/
