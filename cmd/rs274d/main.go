package main

import (
	"flag"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/tarm/serial"

	"github.com/mastercactapus/rs274/controller"
	"github.com/mastercactapus/rs274/vm"
)

func main() {
	log.SetFlags(log.Lshortfile)

	addr := flag.String("addr", ":9092", "Address to bind the rs274 server to.")
	port := flag.String("port", "", "Serial port to read G-code lines from.")
	baud := flag.Int("baud", 115200, "Baud rate for the serial port.")
	dir := flag.String("dir", "./data", "Data directory for stored programs.")
	stdin := flag.Bool("stdin", false, "Also read G-code lines from stdin.")
	flag.Parse()

	m := vm.NewMachine()
	ctrl := controller.New(m)

	if *port != "" {
		p, err := serial.OpenPort(&serial.Config{Name: *port, Baud: *baud})
		if err != nil {
			log.Fatal(err)
		}
		go func() {
			err := ctrl.Serve(p)
			if err != nil && err != io.EOF {
				log.Printf("ERROR: serial: %+v", err)
			}
		}()
	}
	if *stdin {
		go func() {
			if err := ctrl.Serve(os.Stdin); err != nil {
				log.Printf("ERROR: stdin: %+v", err)
			}
		}()
	}

	api := newAPI(ctrl, *dir)

	err := http.ListenAndServe(*addr, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		log.Printf("%s %s - %s", req.Method, req.URL.Path, req.RemoteAddr)
		api.ServeHTTP(w, req)
	}))
	if err != nil {
		log.Fatal(err)
	}
}
