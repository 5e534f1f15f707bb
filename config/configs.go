package config

import (
	"encoding/xml"
	"fmt"
	"os"
)

var MainRouter string
var FrontendURL string
var DSN string
var Dbname string
var UploadDir string
var JWTSecret string
var MainConfig Config

type Config struct {
	XMLName     xml.Name `xml:"config"`
	MainRouter  string   `xml:"MainRouter"`
	FrontendURL string   `xml:"FrontendURL"`
	Dbname      string   `xml:"dbname"`
	Host        string   `xml:"host"`
	Port        string   `xml:"port"`
	Username    string   `xml:"user"`
	Password    string   `xml:"password"`
	UploadDir   string   `xml:"uploads"`
	JWTSecret   string   `xml:"jwtsecret"`
}

func init() {

	xmlFile, err := os.Open("config.xml")
	if err != nil {
		fmt.Println("Error  opening  file:", err)
		return
	}
	defer xmlFile.Close()

	xmlDecoder := xml.NewDecoder(xmlFile)
	err = xmlDecoder.Decode(&MainConfig)
	if err != nil {
		fmt.Println("Error  decoding  XML:", err)
		return
	}
	MainRouter = MainConfig.MainRouter
	FrontendURL = MainConfig.FrontendURL
	Dbname = MainConfig.Dbname
	UploadDir = MainConfig.UploadDir
	JWTSecret = MainConfig.JWTSecret
	if UploadDir == "" {
		UploadDir = "./uploads"
	}
	if MainRouter == "" {
		MainRouter = "0.0.0.0:3000"
	}

	DSN = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC", MainConfig.Host, MainConfig.Username, MainConfig.Password, MainConfig.Dbname, MainConfig.Port)
}
