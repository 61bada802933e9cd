package client

// Command and event names of the bridge protocol. Events are namespaced
// under the game identifier as "{gameID}:{name}".
const (
	helloCommand = "bridgehlo"
	gameCommand  = "game"
	joinCommand  = "join"
	getCommand   = "get"
	callCommand  = "call"
	playCommand  = "play"

	initGetTag = "initget"

	dealEvent    = "deal"
	turnEvent    = "turn"
	callEvent    = "call"
	biddingEvent = "bidding"
	playEvent    = "play"
	dummyEvent   = "dummy"
	trickEvent   = "trick"
	dealEndEvent = "dealend"

	protocolVersion = "0.1"
	clientRole      = "client"
)

// Argument keys and state section names.
const (
	versionKey  = "version"
	roleKey     = "role"
	gameKey     = "game"
	positionKey = "position"
	getKey      = "get"
	callKey     = "call"
	cardKey     = "card"

	pubStateKey  = "pubstate"
	privStateKey = "privstate"
	selfStateKey = "self"
)
