package pgn

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/ChizhovVadim/chessai/pkg/common"
	"github.com/ChizhovVadim/chessai/pkg/engine"
)

type Tag struct {
	Key   string
	Value string
}

type Game struct {
	Tags   []Tag
	Fen    string // empty for the initial position
	Items  []Item
	Result common.GameResult
}

type Item struct {
	Move    common.Move
	Comment Comment
}

// Comment is the engine annotation of a move: score from the mover's view and search depth.
type Comment struct {
	Depth int
	Score engine.UciScore
}

func (c Comment) String() string {
	if c.Depth == 0 {
		return ""
	}
	if c.Score.Mate != 0 {
		var sign = "+"
		var mate = c.Score.Mate
		if mate < 0 {
			sign = "-"
			mate = -mate
		}
		return fmt.Sprintf("%vM%v/%v", sign, mate, c.Depth)
	}
	return fmt.Sprintf("%+.2f/%v", float64(c.Score.Centipawns)/100, c.Depth)
}

func (g *Game) TagValue(key string) (string, bool) {
	return tagValue(g.Tags, key)
}

var errParseComment = errors.New("parse comment failed")

var (
	tagsRegex    = regexp.MustCompile(`\[[^\]]+\]`)
	tagPairRegex = regexp.MustCompile(`\[(.*)\s\"(.*)\"\]`)
)

// ParseGame reads one game. Moves are resolved from the FEN tag, or the
// initial position, until the first token that is not a legal SAN move.
func ParseGame(pgn string) (Game, error) {
	var tags = parseTags(pgn)

	var fen, _ = tagValue(tags, "FEN")
	var startFen = fen
	if startFen == "" {
		startFen = common.InitialPositionFen
	}
	var b, err = common.NewBoardFromFEN(startFen)
	if err != nil {
		return Game{}, fmt.Errorf("parse FEN tag failed: %w", err)
	}

	var tokens = parsePgnTokens(pgn)
	var items = make([]Item, 0, len(tokens))
	var result = common.GameOngoing
	for _, token := range tokens {
		if r, ok := parseResult(token.Value); ok {
			result = r
			break
		}
		var move, err = b.ParseMoveSAN(token.Value)
		if err != nil {
			break
		}
		var comment Comment
		if token.Comment != "" {
			comment, _ = parseComment(token.Comment)
		}
		items = append(items, Item{Move: move, Comment: comment})
		b.ApplyMove(move)
	}
	if result == common.GameOngoing {
		if sResult, ok := tagValue(tags, "Result"); ok {
			result, _ = parseResult(sResult)
		}
	}

	return Game{
		Tags:   tags,
		Fen:    fen,
		Items:  items,
		Result: result,
	}, nil
}

func parseResult(s string) (common.GameResult, bool) {
	for _, r := range [...]common.GameResult{common.GameWhiteWins, common.GameBlackWins, common.GameDraw, common.GameOngoing} {
		if s == r.String() {
			return r, true
		}
	}
	return common.GameOngoing, false
}

func parseTags(pgn string) []Tag {
	var tags = make([]Tag, 0, 16)
	tagMatches := tagPairRegex.FindAllStringSubmatch(pgn, -1)
	for i := range tagMatches {
		tags = append(tags, Tag{Key: tagMatches[i][1], Value: tagMatches[i][2]})
	}
	return tags
}

func tagValue(tags []Tag, key string) (string, bool) {
	for _, tag := range tags {
		if tag.Key == key {
			return tag.Value, true
		}
	}
	return "", false
}

type token struct {
	Value   string
	Comment string
}

func parsePgnTokens(pgn string) []token {
	pgn = tagsRegex.ReplaceAllString(pgn, "")
	pgn = strings.ReplaceAll(pgn, "\n", " ")
	var result []token
	var inComment = false
	var body string
	for _, rune := range pgn {
		if inComment {
			if rune == '}' {
				if len(result) != 0 {
					result[len(result)-1].Comment = body
				}
				inComment = false
				body = ""
			} else {
				body = body + string(rune)
			}
		} else if rune == '.' {
			body = ""
		} else if unicode.IsSpace(rune) {
			if body != "" {
				result = append(result, token{Value: body})
				body = ""
			}
		} else if rune == '{' {
			if body != "" {
				result = append(result, token{Value: body})
				body = ""
			}
			inComment = true
			body = ""
		} else {
			body = body + string(rune)
		}
	}
	if body != "" {
		result = append(result, token{Value: body})
	}
	return result
}

// parseComment reads "+0.35/4" or "-M2/5" style annotations.
func parseComment(comment string) (Comment, error) {
	var fields = strings.Fields(comment)
	if len(fields) == 0 {
		return Comment{}, errParseComment
	}
	var s = fields[0]
	var index = strings.Index(s, "/")
	if index < 0 {
		return Comment{}, errParseComment
	}
	var sScore = s[:index]
	var sDepth = s[index+1:]

	var uciScore engine.UciScore
	if strings.Contains(sScore, "M") {
		sScore = strings.Replace(sScore, "M", "", 1)
		score, err := strconv.Atoi(sScore)
		if err != nil {
			return Comment{}, err
		}
		uciScore = engine.UciScore{Mate: score}
	} else {
		score, err := strconv.ParseFloat(sScore, 64)
		if err != nil {
			return Comment{}, err
		}
		uciScore = engine.UciScore{Centipawns: int(math.Round(100 * score))}
	}

	depth, err := strconv.Atoi(sDepth)
	if err != nil {
		return Comment{}, err
	}
	return Comment{
		Score: uciScore,
		Depth: depth,
	}, nil
}
