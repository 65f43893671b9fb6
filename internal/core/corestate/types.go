package corestate

// CoreState is a structure that contains the basic meta-information vital
// to the node: identity, version, lifecycle stage and runtime paths.
type CoreState struct {
	UUID32        string
	UUID32DirName string

	StartTimestampUnix int64

	NodeBinName string
	NodeVersion string

	Stage Stage

	NodePath string
	MetaDir  string
	RunDir   string
}
