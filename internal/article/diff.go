package article

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffSegment 历史快照与当前内容的差异片段
// Op: equal(相同), insert(快照→当前新增), delete(快照→当前删除)
type DiffSegment struct {
	Op   string `json:"op"`
	Text string `json:"text"`
}

// DiffAgainstCurrent 计算某条历史快照相对文章当前内容的差异
// 快照为旧文本，当前内容为新文本
func (s *ArticleService) DiffAgainstCurrent(entryID uint) ([]DiffSegment, error) {
	entry, err := s.historyRepo.GetByID(entryID)
	if err != nil {
		return nil, err
	}

	art, err := s.articleRepo.GetByID(entry.ArticleID)
	if err != nil {
		return nil, ErrHistoryNotFound
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(entry.Content, art.Content, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	segments := make([]DiffSegment, 0, len(diffs))
	for _, d := range diffs {
		segments = append(segments, DiffSegment{
			Op:   diffOp(d.Type),
			Text: d.Text,
		})
	}
	return segments, nil
}

func diffOp(t diffmatchpatch.Operation) string {
	switch t {
	case diffmatchpatch.DiffInsert:
		return "insert"
	case diffmatchpatch.DiffDelete:
		return "delete"
	default:
		return "equal"
	}
}
