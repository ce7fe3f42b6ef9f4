package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/decker502/quizbattle/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/semaphore"
)

const (
	// maxImageBytes 单张图片的下载上限
	maxImageBytes = 8 << 20
	// maxConcurrentFetches 同时进行的下载数
	maxConcurrentFetches = 4
)

// Fetcher 读取图片原始数据
type Fetcher func(ctx context.Context, url string) ([]byte, error)

// HTTPFetcher 通过 HTTP GET 下载图片
func HTTPFetcher(client *http.Client) Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return func(ctx context.Context, url string) ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
		}
		return io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	}
}

type imageEntry struct {
	done    bool
	img     image.Image
	err     error
	texture *ebiten.Image
}

// ImageCache 后台加载答案图片
//
// 第一次 Request 某个地址时开始下载，之后返回缓存结果；失败的地址不会重试。
// 纹理在绘制 goroutine 中按需创建。
type ImageCache struct {
	ctx    context.Context
	cancel context.CancelFunc
	fetch  Fetcher
	sem    *semaphore.Weighted
	log    *logger.Logger

	mu      sync.Mutex
	entries map[string]*imageEntry
	wg      sync.WaitGroup
}

// NewImageCache 创建图片缓存，fetch 为 nil 时使用 HTTPFetcher
func NewImageCache(fetch Fetcher, log *logger.Logger) *ImageCache {
	if fetch == nil {
		fetch = HTTPFetcher(nil)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &ImageCache{
		ctx:     ctx,
		cancel:  cancel,
		fetch:   fetch,
		sem:     semaphore.NewWeighted(maxConcurrentFetches),
		log:     logger.OrNop(log),
		entries: make(map[string]*imageEntry),
	}
}

// Request 返回已解码的图片；尚未加载或加载失败时返回 false
func (c *ImageCache) Request(url string) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[url]
	if !ok {
		c.entries[url] = &imageEntry{}
		c.wg.Add(1)
		go c.load(url)
		return nil, false
	}
	if !entry.done || entry.err != nil {
		return nil, false
	}
	return entry.img, true
}

// Texture 返回可绘制的纹理，图片未就绪时为 nil
func (c *ImageCache) Texture(url string) *ebiten.Image {
	img, ok := c.Request(url)
	if !ok {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	entry := c.entries[url]
	if entry.texture == nil {
		entry.texture = ebiten.NewImageFromImage(img)
	}
	return entry.texture
}

// Close 取消进行中的下载并等待后台 goroutine 退出
func (c *ImageCache) Close() {
	c.cancel()
	c.wg.Wait()
}

func (c *ImageCache) load(url string) {
	defer c.wg.Done()
	img, err := c.download(url)

	c.mu.Lock()
	entry := c.entries[url]
	entry.done, entry.img, entry.err = true, img, err
	c.mu.Unlock()

	if err != nil {
		c.log.Warn("[ImageCache] Failed to load image", "url", url, "error", err)
		return
	}
	c.log.Debug("[ImageCache] Image loaded", "url", url, "size", img.Bounds().Size())
}

func (c *ImageCache) download(url string) (image.Image, error) {
	if err := c.sem.Acquire(c.ctx, 1); err != nil {
		return nil, err
	}
	defer c.sem.Release(1)

	data, err := c.fetch(c.ctx, url)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return img, nil
}
