package judge

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/osse101/WolfJourney_Go/internal/domain"
	"github.com/osse101/WolfJourney_Go/internal/llm"
	"github.com/osse101/WolfJourney_Go/internal/logger"
	"github.com/osse101/WolfJourney_Go/internal/metrics"
)

const promptTemplate = `Analyze if this tweet has a bullish or bearish sentiment about cryptocurrency. Only respond with either "Bullish" or "Bearish". Tweet: "%s"`

var trailingVerdict = regexp.MustCompile(`(Bullish|Bearish)$`)

// Judge labels a tweet's sentiment.
type Judge interface {
	Judge(ctx context.Context, content string) (string, error)
}

// SentimentJudge asks an LLM for a Bullish/Bearish verdict.
type SentimentJudge struct {
	llm    llm.Completer
	strict bool
}

// New creates a judge. In strict mode a reply without a trailing verdict is
// an error instead of falling back to its last word.
func New(completer llm.Completer, strict bool) *SentimentJudge {
	return &SentimentJudge{llm: completer, strict: strict}
}

// BuildPrompt renders the judge prompt for a tweet.
func BuildPrompt(content string) string {
	return fmt.Sprintf(promptTemplate, content)
}

// ParseVerdict extracts the label from a model reply. ok is false when the
// reply did not end in Bullish or Bearish; label is then the reply's last
// whitespace-separated token, or Bearish for an empty reply.
func ParseVerdict(reply string) (label string, ok bool) {
	reply = strings.TrimSpace(reply)
	if m := trailingVerdict.FindString(reply); m != "" {
		return m, true
	}
	fields := strings.Fields(reply)
	if len(fields) == 0 {
		return domain.LabelBearish, false
	}
	return fields[len(fields)-1], false
}

// Judge returns the verdict for one tweet.
func (j *SentimentJudge) Judge(ctx context.Context, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", domain.ErrEmptyContent
	}

	log := logger.FromContext(ctx)
	start := time.Now()
	reply, err := j.llm.Complete(ctx, BuildPrompt(content))
	metrics.JudgeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.JudgeErrors.WithLabelValues(ReasonUpstream).Inc()
		log.Error(LogMsgJudgeCallFailed, "error", err)
		return "", err
	}

	label, ok := ParseVerdict(reply)
	if !ok {
		log.Warn(LogMsgUnexpectedReply, "reply", reply, "fallback", label)
		if j.strict {
			metrics.JudgeErrors.WithLabelValues(ReasonUnparsable).Inc()
			return "", fmt.Errorf("%w: %q", domain.ErrUnparsableVerdict, reply)
		}
	}

	metrics.JudgeVerdicts.WithLabelValues(verdictLabel(label)).Inc()
	return label, nil
}

// verdictLabel bounds metric cardinality for fallback tokens.
func verdictLabel(label string) string {
	if label == domain.LabelBullish || label == domain.LabelBearish {
		return label
	}
	return VerdictOther
}
