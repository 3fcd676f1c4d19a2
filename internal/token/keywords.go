package token

// Keywords is the set of reserved words chiSQL recognizes, upper-cased.
// Multi-word constructs (ORDER BY, PRIMARY KEY, LEFT OUTER JOIN, ...)
// are composed by the parser out of single keyword tokens
// rather than recognized here, so the lexer never has to backtrack or
// peek past whitespace to classify a word — adapted from the declarative
// keyword/operator tables the pack keeps as data (mapping.OperationGroups,
// mapping.QueryClauses, mapping.OperatorMap) rather than as scattered
// string literals through the scanner.
var Keywords = map[string]bool{
	"SELECT": true, "FROM": true, "WHERE": true, "AS": true, "DISTINCT": true,
	"AND": true, "OR": true, "NOT": true,
	"JOIN": true, "INNER": true, "LEFT": true, "RIGHT": true, "FULL": true,
	"OUTER": true, "CROSS": true, "NATURAL": true, "ON": true, "USING": true,
	"ORDER": true, "BY": true, "ASC": true, "DESC": true,
	"GROUP": true, "HAVING": true,
	"UNION": true, "INTERSECT": true, "EXCEPT": true, "ALL": true,
	"IN": true, "IS": true, "NULL": true, "BETWEEN": true, "LIKE": true,
	"LIMIT": true, "OFFSET": true,

	"CREATE": true, "TABLE": true, "INSERT": true, "INTO": true, "VALUES": true,
	"DELETE": true,
	"PRIMARY": true, "KEY": true, "FOREIGN": true, "REFERENCES": true,
	"UNIQUE": true, "DEFAULT": true, "AUTO": true, "INCREMENT": true,
	"CHECK": true,

	"INT": true, "INTEGER": true, "VARCHAR": true, "CHAR": true,
	"DOUBLE": true, "FLOAT": true, "BOOLEAN": true, "DATE": true, "TEXT": true,

	"COUNT": true, "SUM": true, "AVG": true, "MIN": true, "MAX": true,
}

// AggregateFunctions is the set of recognized aggregate function names.
var AggregateFunctions = map[string]bool{
	"COUNT": true, "SUM": true, "AVG": true, "MIN": true, "MAX": true,
}

// multiCharSymbols are the multi-character operator symbols;
// maximal-munch scanning tries these before the single-character ones
// (<=, >=, <>, != before <, >, =).
var multiCharSymbols = []string{"<=", ">=", "<>", "!="}

var singleCharSymbols = map[byte]bool{
	'(': true, ')': true, ',': true, '.': true, ';': true,
	'=': true, '<': true, '>': true,
	'+': true, '-': true, '*': true, '/': true,
}
