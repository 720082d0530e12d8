package configwatcher

import (
	"career_match_backend/internal/config"
	"career_match_backend/pkg/logger"
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const configFile = "config.yaml"

// DefaultDebounce 编辑器保存时常连续触发多次事件
const DefaultDebounce = time.Second

type Reloader func(cfg *config.Config)

// Watch 监听配置目录，config.yaml 变化后重新加载并回调；阻塞直到 ctx 结束。
// 监听目录而不是文件，保证编辑器以 rename 方式保存时仍能收到事件。
func Watch(ctx context.Context, configDir string, debounce time.Duration, reload Reloader) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}
	defer watcher.Close()

	absDir, err := filepath.Abs(configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	if err := watcher.Add(absDir); err != nil {
		return fmt.Errorf("watch config dir: %w", err)
	}
	target := filepath.Join(absDir, configFile)

	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// 防抖处理
			timer.Reset(debounce)
		case <-timer.C:
			newCfg, err := config.LoadConfig(absDir)
			if err != nil {
				logger.Log.Error("重新加载配置失败", zap.String("dir", absDir), zap.Error(err))
				continue
			}
			logger.Log.Info("配置文件已重新加载", zap.String("file", target))
			reload(newCfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Log.Error("配置监听出错", zap.Error(err))
		}
	}
}
