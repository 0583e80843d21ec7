// Word lists follow ISO/IEC 39075 (GQL). Keep entries sorted.

package token

// Keyword identifies a GQL keyword. KwNone marks a plain identifier.
type Keyword uint16

const (
	KwNone Keyword = iota
	KwAbs
	KwAbstract
	KwAcos
	KwAcyclic
	KwAggregate
	KwAggregates
	KwAll
	KwAllDifferent
	KwAlter
	KwAnd
	KwAny
	KwArray
	KwAs
	KwAsc
	KwAscending
	KwAsin
	KwAt
	KwAtan
	KwAvg
	KwBig
	KwBigint
	KwBinary
	KwBinding
	KwBindings
	KwBool
	KwBoolean
	KwBoth
	KwBtrim
	KwBy
	KwBytes
	KwByteLength
	KwCall
	KwCardinality
	KwCase
	KwCast
	KwCatalog
	KwCeil
	KwCeiling
	KwChar
	KwCharacteristics
	KwCharacterLength
	KwCharLength
	KwClear
	KwClone
	KwClose
	KwCoalesce
	KwCollectList
	KwCommit
	KwConnecting
	KwConstraint
	KwCopy
	KwCos
	KwCosh
	KwCot
	KwCount
	KwCreate
	KwCurrentDate
	KwCurrentGraph
	KwCurrentPropertyGraph
	KwCurrentRole
	KwCurrentSchema
	KwCurrentTime
	KwCurrentTimestamp
	KwCurrentUser
	KwData
	KwDate
	KwDatetime
	KwDay
	KwDec
	KwDecimal
	KwDegrees
	KwDelete
	KwDesc
	KwDescending
	KwDestination
	KwDetach
	KwDifferent
	KwDirected
	KwDirectory
	KwDistinct
	KwDouble
	KwDrop
	KwDryrun
	KwDuration
	KwDurationBetween
	KwEdge
	KwEdges
	KwElement
	KwElements
	KwElementId
	KwElse
	KwEnd
	KwExact
	KwExcept
	KwExisting
	KwExists
	KwExp
	KwFalse
	KwFilter
	KwFinish
	KwFirst
	KwFloat
	KwFloat128
	KwFloat16
	KwFloat256
	KwFloat32
	KwFloat64
	KwFloor
	KwFor
	KwFrom
	KwFunction
	KwGqlstatus
	KwGrant
	KwGraph
	KwGroup
	KwGroups
	KwHaving
	KwHomeGraph
	KwHomePropertyGraph
	KwHomeSchema
	KwHour
	KwIf
	KwImplies
	KwIn
	KwInfinity
	KwInherits
	KwInsert
	KwInstant
	KwInt
	KwInt128
	KwInt16
	KwInt256
	KwInt32
	KwInt64
	KwInt8
	KwInteger
	KwInteger128
	KwInteger16
	KwInteger256
	KwInteger32
	KwInteger64
	KwInteger8
	KwIntersect
	KwInterval
	KwIs
	KwKeep
	KwLabel
	KwLabeled
	KwLabels
	KwLast
	KwLeading
	KwLeft
	KwLet
	KwLike
	KwLimit
	KwList
	KwLn
	KwLocal
	KwLocalDatetime
	KwLocalTime
	KwLocalTimestamp
	KwLog
	KwLog10
	KwLower
	KwLtrim
	KwMatch
	KwMax
	KwMin
	KwMinute
	KwMod
	KwMonth
	KwNext
	KwNfc
	KwNfd
	KwNfkc
	KwNfkd
	KwNo
	KwNode
	KwNodetach
	KwNormalize
	KwNormalized
	KwNot
	KwNothing
	KwNull
	KwNullif
	KwNulls
	KwNumber
	KwNumeric
	KwOctetLength
	KwOf
	KwOffset
	KwOn
	KwOnly
	KwOpen
	KwOptional
	KwOr
	KwOrder
	KwOrdinality
	KwOtherwise
	KwParameter
	KwParameters
	KwPartition
	KwPath
	KwPaths
	KwPathLength
	KwPercentileCont
	KwPercentileDisc
	KwPower
	KwPrecision
	KwProcedure
	KwProduct
	KwProject
	KwProperty
	KwPropertyExists
	KwQuery
	KwRadians
	KwRead
	KwReal
	KwRecord
	KwRecords
	KwReference
	KwRelationship
	KwRelationships
	KwRemove
	KwRename
	KwRepeatable
	KwReplace
	KwReset
	KwReturn
	KwRevoke
	KwRight
	KwRollback
	KwRtrim
	KwSame
	KwSchema
	KwSecond
	KwSelect
	KwSession
	KwSessionUser
	KwSet
	KwShortest
	KwSigned
	KwSimple
	KwSin
	KwSinh
	KwSize
	KwSkip
	KwSmall
	KwSmallint
	KwSource
	KwSqrt
	KwStart
	KwStddevPop
	KwStddevSamp
	KwString
	KwSubstring
	KwSum
	KwSystemUser
	KwTable
	KwTan
	KwTanh
	KwTemp
	KwTemporal
	KwThen
	KwTime
	KwTimestamp
	KwTo
	KwTrail
	KwTrailing
	KwTransaction
	KwTrim
	KwTrue
	KwType
	KwTyped
	KwUbigint
	KwUint
	KwUint128
	KwUint16
	KwUint256
	KwUint32
	KwUint64
	KwUint8
	KwUndirected
	KwUnion
	KwUnique
	KwUnit
	KwUnknown
	KwUnsigned
	KwUpper
	KwUse
	KwUsmallint
	KwValue
	KwValues
	KwVarbinary
	KwVarchar
	KwVariable
	KwVertex
	KwVertices
	KwWalk
	KwWhen
	KwWhere
	KwWhitespace
	KwWith
	KwWithout
	KwWork
	KwWrite
	KwXor
	KwYear
	KwYield
	KwZone
	KwZoned
	KwZonedDatetime
	KwZonedTime

	keywordCount
)

var keywordTable = [keywordCount]struct {
	text string
	tier Tier
}{
	KwAbs:                  {"ABS", Reserved},
	KwAbstract:             {"ABSTRACT", PreReserved},
	KwAcos:                 {"ACOS", Reserved},
	KwAcyclic:              {"ACYCLIC", NonReserved},
	KwAggregate:            {"AGGREGATE", PreReserved},
	KwAggregates:           {"AGGREGATES", PreReserved},
	KwAll:                  {"ALL", Reserved},
	KwAllDifferent:         {"ALL_DIFFERENT", Reserved},
	KwAlter:                {"ALTER", PreReserved},
	KwAnd:                  {"AND", Reserved},
	KwAny:                  {"ANY", Reserved},
	KwArray:                {"ARRAY", Reserved},
	KwAs:                   {"AS", Reserved},
	KwAsc:                  {"ASC", Reserved},
	KwAscending:            {"ASCENDING", Reserved},
	KwAsin:                 {"ASIN", Reserved},
	KwAt:                   {"AT", Reserved},
	KwAtan:                 {"ATAN", Reserved},
	KwAvg:                  {"AVG", Reserved},
	KwBig:                  {"BIG", Reserved},
	KwBigint:               {"BIGINT", Reserved},
	KwBinary:               {"BINARY", Reserved},
	KwBinding:              {"BINDING", NonReserved},
	KwBindings:             {"BINDINGS", NonReserved},
	KwBool:                 {"BOOL", Reserved},
	KwBoolean:              {"BOOLEAN", Reserved},
	KwBoth:                 {"BOTH", Reserved},
	KwBtrim:                {"BTRIM", Reserved},
	KwBy:                   {"BY", Reserved},
	KwBytes:                {"BYTES", Reserved},
	KwByteLength:           {"BYTE_LENGTH", Reserved},
	KwCall:                 {"CALL", Reserved},
	KwCardinality:          {"CARDINALITY", Reserved},
	KwCase:                 {"CASE", Reserved},
	KwCast:                 {"CAST", Reserved},
	KwCatalog:              {"CATALOG", PreReserved},
	KwCeil:                 {"CEIL", Reserved},
	KwCeiling:              {"CEILING", Reserved},
	KwChar:                 {"CHAR", Reserved},
	KwCharacteristics:      {"CHARACTERISTICS", Reserved},
	KwCharacterLength:      {"CHARACTER_LENGTH", Reserved},
	KwCharLength:           {"CHAR_LENGTH", Reserved},
	KwClear:                {"CLEAR", PreReserved},
	KwClone:                {"CLONE", PreReserved},
	KwClose:                {"CLOSE", Reserved},
	KwCoalesce:             {"COALESCE", Reserved},
	KwCollectList:          {"COLLECT_LIST", Reserved},
	KwCommit:               {"COMMIT", Reserved},
	KwConnecting:           {"CONNECTING", NonReserved},
	KwConstraint:           {"CONSTRAINT", PreReserved},
	KwCopy:                 {"COPY", Reserved},
	KwCos:                  {"COS", Reserved},
	KwCosh:                 {"COSH", Reserved},
	KwCot:                  {"COT", Reserved},
	KwCount:                {"COUNT", Reserved},
	KwCreate:               {"CREATE", Reserved},
	KwCurrentDate:          {"CURRENT_DATE", Reserved},
	KwCurrentGraph:         {"CURRENT_GRAPH", Reserved},
	KwCurrentPropertyGraph: {"CURRENT_PROPERTY_GRAPH", Reserved},
	KwCurrentRole:          {"CURRENT_ROLE", PreReserved},
	KwCurrentSchema:        {"CURRENT_SCHEMA", Reserved},
	KwCurrentTime:          {"CURRENT_TIME", Reserved},
	KwCurrentTimestamp:     {"CURRENT_TIMESTAMP", Reserved},
	KwCurrentUser:          {"CURRENT_USER", PreReserved},
	KwData:                 {"DATA", PreReserved},
	KwDate:                 {"DATE", Reserved},
	KwDatetime:             {"DATETIME", Reserved},
	KwDay:                  {"DAY", Reserved},
	KwDec:                  {"DEC", Reserved},
	KwDecimal:              {"DECIMAL", Reserved},
	KwDegrees:              {"DEGREES", Reserved},
	KwDelete:               {"DELETE", Reserved},
	KwDesc:                 {"DESC", Reserved},
	KwDescending:           {"DESCENDING", Reserved},
	KwDestination:          {"DESTINATION", NonReserved},
	KwDetach:               {"DETACH", Reserved},
	KwDifferent:            {"DIFFERENT", NonReserved},
	KwDirected:             {"DIRECTED", NonReserved},
	KwDirectory:            {"DIRECTORY", PreReserved},
	KwDistinct:             {"DISTINCT", Reserved},
	KwDouble:               {"DOUBLE", Reserved},
	KwDrop:                 {"DROP", Reserved},
	KwDryrun:               {"DRYRUN", PreReserved},
	KwDuration:             {"DURATION", Reserved},
	KwDurationBetween:      {"DURATION_BETWEEN", Reserved},
	KwEdge:                 {"EDGE", NonReserved},
	KwEdges:                {"EDGES", NonReserved},
	KwElement:              {"ELEMENT", NonReserved},
	KwElements:             {"ELEMENTS", NonReserved},
	KwElementId:            {"ELEMENT_ID", Reserved},
	KwElse:                 {"ELSE", Reserved},
	KwEnd:                  {"END", Reserved},
	KwExact:                {"EXACT", PreReserved},
	KwExcept:               {"EXCEPT", Reserved},
	KwExisting:             {"EXISTING", PreReserved},
	KwExists:               {"EXISTS", Reserved},
	KwExp:                  {"EXP", Reserved},
	KwFalse:                {"FALSE", Reserved},
	KwFilter:               {"FILTER", Reserved},
	KwFinish:               {"FINISH", Reserved},
	KwFirst:                {"FIRST", NonReserved},
	KwFloat:                {"FLOAT", Reserved},
	KwFloat128:             {"FLOAT128", Reserved},
	KwFloat16:              {"FLOAT16", Reserved},
	KwFloat256:             {"FLOAT256", Reserved},
	KwFloat32:              {"FLOAT32", Reserved},
	KwFloat64:              {"FLOAT64", Reserved},
	KwFloor:                {"FLOOR", Reserved},
	KwFor:                  {"FOR", Reserved},
	KwFrom:                 {"FROM", Reserved},
	KwFunction:             {"FUNCTION", PreReserved},
	KwGqlstatus:            {"GQLSTATUS", PreReserved},
	KwGrant:                {"GRANT", PreReserved},
	KwGraph:                {"GRAPH", NonReserved},
	KwGroup:                {"GROUP", Reserved},
	KwGroups:               {"GROUPS", NonReserved},
	KwHaving:               {"HAVING", Reserved},
	KwHomeGraph:            {"HOME_GRAPH", Reserved},
	KwHomePropertyGraph:    {"HOME_PROPERTY_GRAPH", Reserved},
	KwHomeSchema:           {"HOME_SCHEMA", Reserved},
	KwHour:                 {"HOUR", Reserved},
	KwIf:                   {"IF", Reserved},
	KwImplies:              {"IMPLIES", Reserved},
	KwIn:                   {"IN", Reserved},
	KwInfinity:             {"INFINITY", PreReserved},
	KwInherits:             {"INHERITS", NonReserved},
	KwInsert:               {"INSERT", Reserved},
	KwInstant:              {"INSTANT", PreReserved},
	KwInt:                  {"INT", Reserved},
	KwInt128:               {"INT128", Reserved},
	KwInt16:                {"INT16", Reserved},
	KwInt256:               {"INT256", Reserved},
	KwInt32:                {"INT32", Reserved},
	KwInt64:                {"INT64", Reserved},
	KwInt8:                 {"INT8", Reserved},
	KwInteger:              {"INTEGER", Reserved},
	KwInteger128:           {"INTEGER128", Reserved},
	KwInteger16:            {"INTEGER16", Reserved},
	KwInteger256:           {"INTEGER256", Reserved},
	KwInteger32:            {"INTEGER32", Reserved},
	KwInteger64:            {"INTEGER64", Reserved},
	KwInteger8:             {"INTEGER8", Reserved},
	KwIntersect:            {"INTERSECT", Reserved},
	KwInterval:             {"INTERVAL", Reserved},
	KwIs:                   {"IS", Reserved},
	KwKeep:                 {"KEEP", NonReserved},
	KwLabel:                {"LABEL", NonReserved},
	KwLabeled:              {"LABELED", NonReserved},
	KwLabels:               {"LABELS", NonReserved},
	KwLast:                 {"LAST", NonReserved},
	KwLeading:              {"LEADING", Reserved},
	KwLeft:                 {"LEFT", Reserved},
	KwLet:                  {"LET", Reserved},
	KwLike:                 {"LIKE", Reserved},
	KwLimit:                {"LIMIT", Reserved},
	KwList:                 {"LIST", Reserved},
	KwLn:                   {"LN", Reserved},
	KwLocal:                {"LOCAL", Reserved},
	KwLocalDatetime:        {"LOCAL_DATETIME", Reserved},
	KwLocalTime:            {"LOCAL_TIME", Reserved},
	KwLocalTimestamp:       {"LOCAL_TIMESTAMP", Reserved},
	KwLog:                  {"LOG", Reserved},
	KwLog10:                {"LOG10", Reserved},
	KwLower:                {"LOWER", Reserved},
	KwLtrim:                {"LTRIM", Reserved},
	KwMatch:                {"MATCH", Reserved},
	KwMax:                  {"MAX", Reserved},
	KwMin:                  {"MIN", Reserved},
	KwMinute:               {"MINUTE", Reserved},
	KwMod:                  {"MOD", Reserved},
	KwMonth:                {"MONTH", Reserved},
	KwNext:                 {"NEXT", Reserved},
	KwNfc:                  {"NFC", NonReserved},
	KwNfd:                  {"NFD", NonReserved},
	KwNfkc:                 {"NFKC", NonReserved},
	KwNfkd:                 {"NFKD", NonReserved},
	KwNo:                   {"NO", NonReserved},
	KwNode:                 {"NODE", NonReserved},
	KwNodetach:             {"NODETACH", Reserved},
	KwNormalize:            {"NORMALIZE", Reserved},
	KwNormalized:           {"NORMALIZED", NonReserved},
	KwNot:                  {"NOT", Reserved},
	KwNothing:              {"NOTHING", Reserved},
	KwNull:                 {"NULL", Reserved},
	KwNullif:               {"NULLIF", Reserved},
	KwNulls:                {"NULLS", Reserved},
	KwNumber:               {"NUMBER", PreReserved},
	KwNumeric:              {"NUMERIC", PreReserved},
	KwOctetLength:          {"OCTET_LENGTH", Reserved},
	KwOf:                   {"OF", Reserved},
	KwOffset:               {"OFFSET", Reserved},
	KwOn:                   {"ON", PreReserved},
	KwOnly:                 {"ONLY", NonReserved},
	KwOpen:                 {"OPEN", PreReserved},
	KwOptional:             {"OPTIONAL", Reserved},
	KwOr:                   {"OR", Reserved},
	KwOrder:                {"ORDER", Reserved},
	KwOrdinality:           {"ORDINALITY", NonReserved},
	KwOtherwise:            {"OTHERWISE", Reserved},
	KwParameter:            {"PARAMETER", Reserved},
	KwParameters:           {"PARAMETERS", Reserved},
	KwPartition:            {"PARTITION", PreReserved},
	KwPath:                 {"PATH", Reserved},
	KwPaths:                {"PATHS", Reserved},
	KwPathLength:           {"PATH_LENGTH", Reserved},
	KwPercentileCont:       {"PERCENTILE_CONT", Reserved},
	KwPercentileDisc:       {"PERCENTILE_DISC", Reserved},
	KwPower:                {"POWER", Reserved},
	KwPrecision:            {"PRECISION", Reserved},
	KwProcedure:            {"PROCEDURE", PreReserved},
	KwProduct:              {"PRODUCT", PreReserved},
	KwProject:              {"PROJECT", PreReserved},
	KwProperty:             {"PROPERTY", NonReserved},
	KwPropertyExists:       {"PROPERTY_EXISTS", Reserved},
	KwQuery:                {"QUERY", PreReserved},
	KwRadians:              {"RADIANS", Reserved},
	KwRead:                 {"READ", NonReserved},
	KwReal:                 {"REAL", Reserved},
	KwRecord:               {"RECORD", Reserved},
	KwRecords:              {"RECORDS", PreReserved},
	KwReference:            {"REFERENCE", PreReserved},
	KwRelationship:         {"RELATIONSHIP", NonReserved},
	KwRelationships:        {"RELATIONSHIPS", NonReserved},
	KwRemove:               {"REMOVE", Reserved},
	KwRename:               {"RENAME", PreReserved},
	KwRepeatable:           {"REPEATABLE", NonReserved},
	KwReplace:              {"REPLACE", Reserved},
	KwReset:                {"RESET", Reserved},
	KwReturn:               {"RETURN", Reserved},
	KwRevoke:               {"REVOKE", PreReserved},
	KwRight:                {"RIGHT", Reserved},
	KwRollback:             {"ROLLBACK", Reserved},
	KwRtrim:                {"RTRIM", Reserved},
	KwSame:                 {"SAME", Reserved},
	KwSchema:               {"SCHEMA", Reserved},
	KwSecond:               {"SECOND", Reserved},
	KwSelect:               {"SELECT", Reserved},
	KwSession:              {"SESSION", Reserved},
	KwSessionUser:          {"SESSION_USER", Reserved},
	KwSet:                  {"SET", Reserved},
	KwShortest:             {"SHORTEST", NonReserved},
	KwSigned:               {"SIGNED", Reserved},
	KwSimple:               {"SIMPLE", NonReserved},
	KwSin:                  {"SIN", Reserved},
	KwSinh:                 {"SINH", Reserved},
	KwSize:                 {"SIZE", Reserved},
	KwSkip:                 {"SKIP", Reserved},
	KwSmall:                {"SMALL", Reserved},
	KwSmallint:             {"SMALLINT", Reserved},
	KwSource:               {"SOURCE", NonReserved},
	KwSqrt:                 {"SQRT", Reserved},
	KwStart:                {"START", Reserved},
	KwStddevPop:            {"STDDEV_POP", Reserved},
	KwStddevSamp:           {"STDDEV_SAMP", Reserved},
	KwString:               {"STRING", Reserved},
	KwSubstring:            {"SUBSTRING", PreReserved},
	KwSum:                  {"SUM", Reserved},
	KwSystemUser:           {"SYSTEM_USER", PreReserved},
	KwTable:                {"TABLE", NonReserved},
	KwTan:                  {"TAN", Reserved},
	KwTanh:                 {"TANH", Reserved},
	KwTemp:                 {"TEMP", NonReserved},
	KwTemporal:             {"TEMPORAL", PreReserved},
	KwThen:                 {"THEN", Reserved},
	KwTime:                 {"TIME", Reserved},
	KwTimestamp:            {"TIMESTAMP", Reserved},
	KwTo:                   {"TO", NonReserved},
	KwTrail:                {"TRAIL", NonReserved},
	KwTrailing:             {"TRAILING", Reserved},
	KwTransaction:          {"TRANSACTION", NonReserved},
	KwTrim:                 {"TRIM", Reserved},
	KwTrue:                 {"TRUE", Reserved},
	KwType:                 {"TYPE", NonReserved},
	KwTyped:                {"TYPED", Reserved},
	KwUbigint:              {"UBIGINT", Reserved},
	KwUint:                 {"UINT", Reserved},
	KwUint128:              {"UINT128", Reserved},
	KwUint16:               {"UINT16", Reserved},
	KwUint256:              {"UINT256", Reserved},
	KwUint32:               {"UINT32", Reserved},
	KwUint64:               {"UINT64", Reserved},
	KwUint8:                {"UINT8", Reserved},
	KwUndirected:           {"UNDIRECTED", NonReserved},
	KwUnion:                {"UNION", Reserved},
	KwUnique:               {"UNIQUE", PreReserved},
	KwUnit:                 {"UNIT", PreReserved},
	KwUnknown:              {"UNKNOWN", Reserved},
	KwUnsigned:             {"UNSIGNED", Reserved},
	KwUpper:                {"UPPER", Reserved},
	KwUse:                  {"USE", Reserved},
	KwUsmallint:            {"USMALLINT", Reserved},
	KwValue:                {"VALUE", Reserved},
	KwValues:               {"VALUES", PreReserved},
	KwVarbinary:            {"VARBINARY", Reserved},
	KwVarchar:              {"VARCHAR", Reserved},
	KwVariable:             {"VARIABLE", Reserved},
	KwVertex:               {"VERTEX", NonReserved},
	KwVertices:             {"VERTICES", NonReserved},
	KwWalk:                 {"WALK", NonReserved},
	KwWhen:                 {"WHEN", Reserved},
	KwWhere:                {"WHERE", Reserved},
	KwWhitespace:           {"WHITESPACE", PreReserved},
	KwWith:                 {"WITH", Reserved},
	KwWithout:              {"WITHOUT", NonReserved},
	KwWork:                 {"WORK", Reserved},
	KwWrite:                {"WRITE", NonReserved},
	KwXor:                  {"XOR", Reserved},
	KwYear:                 {"YEAR", Reserved},
	KwYield:                {"YIELD", Reserved},
	KwZone:                 {"ZONE", NonReserved},
	KwZoned:                {"ZONED", Reserved},
	KwZonedDatetime:        {"ZONED_DATETIME", Reserved},
	KwZonedTime:            {"ZONED_TIME", Reserved},
}
