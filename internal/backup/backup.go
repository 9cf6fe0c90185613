// Package backup 外部备份镜像
// 备份是主存储之外尽力而为的副通道：入队不阻塞写路径，
// 失败只记日志、重试若干次后放弃，绝不把失败上抛给调用方
package backup

import (
	"context"
	"log"
	"time"

	"github.com/sethvargo/go-retry"
)

// Sink 备份落点：把一篇文章的标题和内容镜像到外部存储
type Sink interface {
	Persist(ctx context.Context, title, content string) error
}

// Notifier 提交后通知接口，文章服务在事务提交之后调用
type Notifier interface {
	Notify(title, content string)
}

// Nop 备份关闭时的空实现
type Nop struct{}

func (Nop) Notify(title, content string) {}

type entry struct {
	title   string
	content string
}

// AsyncNotifier 异步备份通知器
// 单 worker 消费缓冲队列，队列满时丢弃并记日志——备份延迟和可用性
// 永远不能拖累主写路径
type AsyncNotifier struct {
	sink  Sink
	queue chan entry
	done  chan struct{}
}

// NewAsyncNotifier 创建并启动异步通知器
func NewAsyncNotifier(sink Sink, queueSize int) *AsyncNotifier {
	if queueSize <= 0 {
		queueSize = 64
	}
	n := &AsyncNotifier{
		sink:  sink,
		queue: make(chan entry, queueSize),
		done:  make(chan struct{}),
	}
	go n.worker()
	return n
}

// Notify 入队一条备份任务，永不阻塞
func (n *AsyncNotifier) Notify(title, content string) {
	select {
	case n.queue <- entry{title: title, content: content}:
	default:
		log.Printf("备份队列已满，丢弃: %s", title)
	}
}

// Close 停止接收并等 worker 清空队列
func (n *AsyncNotifier) Close() {
	close(n.queue)
	<-n.done
}

func (n *AsyncNotifier) worker() {
	defer close(n.done)
	for e := range n.queue {
		n.persist(e)
	}
}

// persist 带上限退避重试地写一条备份，最终失败则放弃
func (n *AsyncNotifier) persist(e entry) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := n.sink.Persist(ctx, e.title, e.content); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		log.Printf("备份失败，放弃 (title=%s): %v", e.title, err)
	}
}
