package utils

import (
	"errors"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/russross/blackfriday"
)

var (
	ErrEmptyContent = errors.New("内容不能为空")
)

// ConvertMarkdownToHTML 将 Markdown 内容转换为 HTML 并移除可能的恶意脚本标签
func ConvertMarkdownToHTML(content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyContent
	}

	unsafe := blackfriday.MarkdownCommon([]byte(content))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(unsafe)))
	if err != nil {
		return "", err
	}

	// 移除所有脚本标签
	doc.Find("script").Remove()

	return doc.Html()
}

// ConvertHTMLToMarkdown 将 HTML 内容转换回 Markdown 格式
func ConvertHTMLToMarkdown(htmlContent string) (string, error) {
	if strings.TrimSpace(htmlContent) == "" {
		return "", ErrEmptyContent
	}

	converter := md.NewConverter("", true, nil)
	return converter.ConvertString(htmlContent)
}

// SanitizeMarkdown markdown经HTML往返一遍，清掉脚本等危险内容
func SanitizeMarkdown(content string) (string, error) {
	html, err := ConvertMarkdownToHTML(content)
	if err != nil {
		return "", err
	}
	return ConvertHTMLToMarkdown(html)
}

// PlainText 去掉markdown正文里的标记字符，用于生成摘要
func PlainText(content string) string {
	html, err := ConvertMarkdownToHTML(content)
	if err != nil {
		return content
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return content
	}
	return strings.TrimSpace(doc.Text())
}
