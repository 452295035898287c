package parserstep2

import (
	pc "github.com/shibukawa/parsercombinator"
	cmn "github.com/shibukawa/sqlsegment/parser/parsercommon"
	tok "github.com/shibukawa/sqlsegment/tokenizer"
)

var spaces = pc.ZeroOrMore("comment or space", pc.Or(cmn.Space, cmn.Comment))

// Clause keywords
var (
	withClause    = cmn.PrimitiveType("with", tok.WITH)
	selectClause  = cmn.PrimitiveType("select", tok.SELECT)
	fromClause    = cmn.PrimitiveType("from", tok.FROM)
	whereClause   = cmn.PrimitiveType("where", tok.WHERE)
	groupKeyword  = cmn.PrimitiveType("group", tok.GROUP)
	orderKeyword  = cmn.PrimitiveType("order", tok.ORDER)
	byKeyword     = cmn.PrimitiveType("by", tok.BY)
	havingClause  = cmn.PrimitiveType("having", tok.HAVING)
	limitClause   = cmn.PrimitiveType("limit", tok.LIMIT)
	offsetClause  = cmn.PrimitiveType("offset", tok.OFFSET)
	setOperation  = cmn.PrimitiveType("setOperation", tok.UNION, tok.INTERSECT, tok.EXCEPT)
	dataStatement = cmn.PrimitiveType("dataStatement", tok.INSERT, tok.UPDATE, tok.DELETE)
)

// tag names of the splitter alternatives
const (
	tagIncomplete   = "incomplete"
	tagSetOperation = "set-operation"
	tagDML          = "dml"
)

var clauseTags = map[string]cmn.ClauseKind{
	"with":     cmn.WITH_CLAUSE,
	"select":   cmn.SELECT_CLAUSE,
	"from":     cmn.FROM_CLAUSE,
	"where":    cmn.WHERE_CLAUSE,
	"group-by": cmn.GROUP_BY_CLAUSE,
	"having":   cmn.HAVING_CLAUSE,
	"order-by": cmn.ORDER_BY_CLAUSE,
	"limit":    cmn.LIMIT_CLAUSE,
	"offset":   cmn.OFFSET_CLAUSE,
}

var splitter = pc.Or(
	cmn.ParenOpen,
	cmn.ParenClose,

	cmn.Tag("with", withClause),
	cmn.Tag("select", selectClause),
	cmn.Tag("from", fromClause),
	cmn.Tag("where", whereClause),
	cmn.Tag("group-by", groupKeyword, spaces, byKeyword),
	cmn.Tag("having", havingClause),
	cmn.Tag("order-by", orderKeyword, spaces, byKeyword),
	cmn.Tag("limit", limitClause),
	cmn.Tag("offset", offsetClause),

	// GROUP or ORDER without BY
	cmn.Tag(tagIncomplete, pc.Or(groupKeyword, orderKeyword)),
	cmn.Tag(tagSetOperation, setOperation),
	cmn.Tag(tagDML, dataStatement),
)
