package cli

type Options struct {
	URL             string            `short:"u" long:"url" description:"jsonrpc server url"`
	ConfigURL       string            `short:"c" long:"config" description:"client config (yaml or json) URL"`
	Server          string            `short:"s" long:"server" description:"target server name" default:"main"`
	Method          string            `short:"m" long:"method" description:"rpc method" required:"true"`
	Params          string            `short:"p" long:"params" description:"JSON encoded params"`
	ParamsURL       string            `short:"P" long:"params-url" description:"JSON params document URL"`
	Headers         map[string]string `short:"H" long:"header" description:"extra header, name:value"`
	Raw             bool              `short:"r" long:"raw" description:"print the raw http response"`
	TimeoutSeconds  int               `short:"t" long:"timeout" description:"http timeout in seconds" default:"30"`
	RequestIDHeader string            `long:"request-id" description:"header stamped with a random request id"`
	RateLimit       float64           `long:"rate" description:"max requests per second"`
	CookieFile      string            `long:"cookies" description:"file persisting session cookies"`
	Verbose         bool              `short:"v" long:"verbose" description:"log http exchanges"`
}
