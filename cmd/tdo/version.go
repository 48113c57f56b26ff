package main

var buildVersion = "dev"

func init() {
	rootCmd.Version = buildVersion
	rootCmd.SetVersionTemplate("tdo {{.Version}}\n")
}
